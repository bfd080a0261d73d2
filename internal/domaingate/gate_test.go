package domaingate

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func silentLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestParseList(t *testing.T) {
	set := ParseList("gmail.com\n  Yahoo.FR  \n\nhotmail.com\n")
	assert.Len(t, set, 3)
	assert.True(t, set.Contains("gmail.com"))
	assert.True(t, set.Contains("yahoo.fr"), "domains are lower-cased on parse")
	assert.True(t, set.Contains("hotmail.com"))
	assert.False(t, set.Contains("wave.ci"))
}

func TestGate_DeniedDomains(t *testing.T) {
	gate := NewGate(ParseList("gmail.com\nyahoo.fr"), silentLogger())

	assert.False(t, gate.IsProfessional("someone@gmail.com"))
	assert.False(t, gate.IsProfessional("someone@GMAIL.com"), "domain match is case-insensitive")
	assert.True(t, gate.IsProfessional("a@wave.ci"))
	assert.True(t, gate.IsProfessional("prenom.nom@entreprise.ci"))
}

func TestGate_NoExtractableDomain(t *testing.T) {
	gate := NewGate(ParseList("gmail.com"), silentLogger())

	assert.False(t, gate.IsProfessional("not-an-email"))
	assert.False(t, gate.IsProfessional("trailing@"))
	assert.False(t, gate.IsProfessional(""))
}

func TestGate_DegradedIsPermissive(t *testing.T) {
	gate := NewGate(nil, silentLogger())

	assert.True(t, gate.Degraded())
	assert.True(t, gate.IsProfessional("someone@gmail.com"),
		"a failed denylist load must not reject submissions")
	assert.False(t, gate.IsProfessional("no-domain"),
		"degraded mode still requires a domain to exist")
}
