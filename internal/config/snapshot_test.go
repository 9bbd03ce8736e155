package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const snapshotYAML = `
taxpayer:
  id: tp-42
  pan: ABCDE1234F
  name: Asha Verma
  itr_type: ITR-2
  financial_year: 2024-25
interest:
  entries:
    - {source: savings, amount: 1200}
    - {source: fd, amount: 34000}
capital_gains:
  - {asset_type: stock, total_profit: 50000}
  - {asset_type: land, total_profit: -20000}
dividends:
  total_amount: 3000
tds:
  balance: 80000
taxes_paid: 12000
`

func TestLoadSnapshot(t *testing.T) {
	path := writeTempFile(t, "snapshot.yaml", snapshotYAML)

	snap, err := LoadSnapshot(path)
	require.NoError(t, err)

	assert.Equal(t, "tp-42", snap.Taxpayer.ID)
	assert.Equal(t, "ITR-2", snap.Taxpayer.ITRType)
	require.NotNil(t, snap.Interest)
	require.Len(t, snap.Interest.Entries, 2)
	assert.True(t, decimal.NewFromInt(34000).Equal(snap.Interest.Entries[1].Amount))
	require.Len(t, snap.CapitalGains, 2)
	assert.True(t, decimal.NewFromInt(-20000).Equal(snap.CapitalGains[1].TotalProfit))
	assert.Nil(t, snap.Rent, "absent categories stay nil")
	assert.Nil(t, snap.Business)
	assert.True(t, decimal.NewFromInt(12000).Equal(snap.TaxesPaid))
}

func TestLoadSnapshotValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing taxpayer id", "taxpayer: {name: nobody}\n"},
		{"bad financial year", "taxpayer: {id: tp-1, financial_year: 'FY2024'}\n"},
		{"negative taxes paid", "taxpayer: {id: tp-1}\ntaxes_paid: -100\n"},
		{"capital gain without asset type", `
taxpayer: {id: tp-1}
capital_gains:
  - {total_profit: 1000}
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, "bad.yaml", tt.yaml)
			_, err := LoadSnapshot(path)
			assert.Error(t, err)
		})
	}
}
