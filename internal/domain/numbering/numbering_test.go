package numbering_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecopumpafrik/gestion-api/internal/domain/numbering"
)

var testDate = time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

// TestFormat_VecteurExact vérifie le format canonique complet:
// majuscules, espaces supprimés, troncature à 10 caractères, séquence sur 3 chiffres.
func TestFormat_VecteurExact(t *testing.T) {
	num, err := numbering.Format("DEV", "ACME CORPORATION", testDate, 7)
	require.NoError(t, err)
	assert.Equal(t, "DEV/ACMECORPOR/05032024/007", num,
		"le numéro doit suivre PREFIX/NOM10/DDMMYYYY/NNN")
}

func TestFormat_SansTiers(t *testing.T) {
	num, err := numbering.Format("RAP", "", testDate, 1)
	require.NoError(t, err)
	assert.Equal(t, "RAP/05032024/001", num,
		"sans tiers le segment nom est omis")
}

func TestFormat_AccentsReplies(t *testing.T) {
	num, err := numbering.Format("FACT", "Société Générale", testDate, 12)
	require.NoError(t, err)
	assert.Equal(t, "FACT/SOCIETEGEN/05032024/012",
		num, "les accents sont repliés avant troncature")
}

func TestFormat_PrefixeVideRejete(t *testing.T) {
	_, err := numbering.Format("", "ACME", testDate, 1)
	assert.Error(t, err, "un préfixe vide est une violation de contrat")

	_, err = numbering.Format("   ", "ACME", testDate, 1)
	assert.Error(t, err)
}

func TestFormat_SequenceInvalideRejetee(t *testing.T) {
	_, err := numbering.Format("DEV", "ACME", testDate, 0)
	assert.Error(t, err)
}

func TestFormat_SequenceLonguePasTronquee(t *testing.T) {
	// Au-delà de 999 le zéro-padding ne tronque pas.
	num, err := numbering.Format("DEV", "ACME", testDate, 1234)
	require.NoError(t, err)
	assert.Equal(t, "DEV/ACME/05032024/1234", num)
}

func TestBucketPrefix_EstPrefixeLitteralDuNumero(t *testing.T) {
	bucket, err := numbering.BucketPrefix("DEV", "ACME CORPORATION", testDate)
	require.NoError(t, err)
	num, err := numbering.Format("DEV", "ACME CORPORATION", testDate, 42)
	require.NoError(t, err)
	assert.Equal(t, bucket+"042", num,
		"le motif compté en base doit être le préfixe exact du numéro formaté")
}

// Deux tiers distincts ne peuvent produire le même compartiment qu'après
// normalisation identique; un même nom à des dates différentes donne des
// compartiments différents.
func TestBucketPrefix_SeparationParDate(t *testing.T) {
	b1, err := numbering.BucketPrefix("DEV", "ACME", testDate)
	require.NoError(t, err)
	b2, err := numbering.BucketPrefix("DEV", "ACME", testDate.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.NotEqual(t, b1, b2)
}

func TestNormalizeCounterparty(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"ACME CORPORATION", "ACMECORPOR"},
		{"  acme  ", "ACME"},
		{"Société Ivoirienne", "SOCIETEIVO"},
		{"ECO PUMP AFRIK", "ECOPUMPAFR"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, numbering.NormalizeCounterparty(c.in), "entrée %q", c.in)
	}
}
