package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistrationsHolderFallsBackToDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	holder, err := NewRegistrationsHolder()
	require.NoError(t, err)

	regs := holder.Get()
	assert.Equal(t, DefaultRegistrations(), regs)
}

func TestNewRegistrationsHolderReadsFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	content := []byte(`registrations:
  vat_number: EU000000001
  abn_number: "11 111 111 111"
  gst_number: 100000001RT0001
  qst_number: 1210000001TQ0001
  norway_vat_number: 900000001MVA
  generic_tax_number: EU000000001
`)
	require.NoError(t, os.WriteFile(dir+"/registrations.yml", content, 0o600))

	holder, err := NewRegistrationsHolder()
	require.NoError(t, err)

	regs := holder.Get()
	assert.Equal(t, "EU000000001", regs.VATNumber)
	assert.Equal(t, "11 111 111 111", regs.ABNNumber)
	assert.Equal(t, "1210000001TQ0001", regs.QSTNumber)
}

func TestValidateRegistrationsRejectsBlankNumbers(t *testing.T) {
	regs := DefaultRegistrations()
	regs.QSTNumber = "  "
	assert.Error(t, validateRegistrations(regs))
}
