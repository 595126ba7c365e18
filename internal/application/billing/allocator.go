package billing

import (
	"time"

	"github.com/ecopumpafrik/gestion-api/internal/domain"
	"github.com/ecopumpafrik/gestion-api/internal/domain/numbering"
	"github.com/ecopumpafrik/gestion-api/internal/domain/repository"
)

// Nombre de tentatives d'allocation quand la contrainte d'unicité du numéro
// détecte une allocation concurrente dans le même compartiment.
const allocationRetries = 3

// NextNumber calcule le prochain numéro du compartiment (préfixe, tiers, date)
// en comptant les documents déjà persistés dont le numéro porte le motif
// littéral du compartiment. Le comptage et la création ne sont pas atomiques:
// deux appels concurrents peuvent produire le même numéro. La contrainte
// d'unicité en base transforme cette course en domain.ErrDuplicate, que
// l'appelant réessaie (boucle bornée).
func NextNumber(counter NumberCounter, prefix, counterparty string, date time.Time) (string, error) {
	bucket, err := numbering.BucketPrefix(prefix, counterparty, date)
	if err != nil {
		return "", err
	}
	n, err := counter.CountByNumberPrefix(bucket)
	if err != nil {
		return "", err
	}
	return numbering.Format(prefix, counterparty, date, int(n)+1)
}

// NumberingUseCase expose l'allocation de numéro aux collaborateurs externes
// (rendu PDF, CLI). DEV compte les devis, FACT les factures; les autres
// préfixes (PAIE, RAP) n'ont pas de collection persistée et démarrent à 001.
type NumberingUseCase struct {
	quotes   repository.QuoteRepository
	invoices repository.InvoiceRepository
	now      func() time.Time
}

// NewNumberingUseCase construit le cas d'usage.
func NewNumberingUseCase(quotes repository.QuoteRepository, invoices repository.InvoiceRepository) *NumberingUseCase {
	return &NumberingUseCase{quotes: quotes, invoices: invoices, now: time.Now}
}

// WithClock remplace l'horloge (tests).
func (uc *NumberingUseCase) WithClock(now func() time.Time) *NumberingUseCase {
	uc.now = now
	return uc
}

// AllocateNumber retourne le prochain numéro formaté pour le compartiment.
// Une date zéro vaut "aujourd'hui".
func (uc *NumberingUseCase) AllocateNumber(prefix, counterparty string, date time.Time) (string, error) {
	if date.IsZero() {
		date = uc.now()
	}
	switch prefix {
	case numbering.PrefixDevis:
		return NextNumber(uc.quotes, prefix, counterparty, date)
	case numbering.PrefixFacture:
		return NextNumber(uc.invoices, prefix, counterparty, date)
	case "":
		return "", domain.ErrInvalidInput
	default:
		return numbering.Format(prefix, counterparty, date, 1)
	}
}
