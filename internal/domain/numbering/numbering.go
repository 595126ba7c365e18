// Package numbering génère les numéros lisibles des documents commerciaux:
// PREFIX/NOMCLIENT/DDMMYYYY/NNN. Fonctions pures, sans effet de bord; le
// comptage des séquences appartient à la couche application.
package numbering

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Préfixes des documents émis par le système.
const (
	PrefixDevis    = "DEV"
	PrefixFacture  = "FACT"
	PrefixPaiement = "PAIE"
	PrefixRapport  = "RAP"
)

const (
	maxNameLen = 10
	seqDigits  = 3
)

// Format construit le numéro canonique d'un document.
//
//	Format("DEV", "ACME CORPORATION", 5 mars 2024, 7) => "DEV/ACMECORPOR/05032024/007"
//
// Le nom du tiers est mis en majuscules, débarrassé de ses espaces et de ses
// accents, puis tronqué à 10 caractères. Sans tiers (rapports agrégés), le
// segment est omis: PREFIX/DDMMYYYY/NNN. Un préfixe vide est une violation de
// contrat et est rejeté.
func Format(prefix, counterparty string, date time.Time, seq int) (string, error) {
	if strings.TrimSpace(prefix) == "" {
		return "", fmt.Errorf("numbering: préfixe vide")
	}
	if seq < 1 {
		return "", fmt.Errorf("numbering: séquence %d invalide (doit être ≥ 1)", seq)
	}
	bucket, err := BucketPrefix(prefix, counterparty, date)
	if err != nil {
		return "", err
	}
	return bucket + fmt.Sprintf("%0*d", seqDigits, seq), nil
}

// BucketPrefix retourne le préfixe littéral du compartiment de numérotation,
// séparateur final inclus: "PREFIX/NOMCLIENT/DDMMYYYY/". C'est ce motif exact
// que l'allocateur compte en base pour calculer la séquence suivante.
func BucketPrefix(prefix, counterparty string, date time.Time) (string, error) {
	if strings.TrimSpace(prefix) == "" {
		return "", fmt.Errorf("numbering: préfixe vide")
	}
	dateStr := date.Format("02012006")
	name := NormalizeCounterparty(counterparty)
	if name == "" {
		return prefix + "/" + dateStr + "/", nil
	}
	return prefix + "/" + name + "/" + dateStr + "/", nil
}

// NormalizeCounterparty nettoie le nom du tiers pour le numéro: majuscules,
// accents repliés (SOCIÉTÉ → SOCIETE), espaces internes supprimés, tronqué à
// 10 caractères.
func NormalizeCounterparty(name string) string {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return ""
	}
	name = foldDiacritics(name)
	var b strings.Builder
	for _, r := range name {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	cleaned := []rune(b.String())
	if len(cleaned) > maxNameLen {
		cleaned = cleaned[:maxNameLen]
	}
	return string(cleaned)
}

// foldDiacritics supprime les marques combinantes après décomposition NFD.
func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
