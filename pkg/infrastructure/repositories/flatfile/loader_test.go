package flatfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/restock/pkg/domain/entities"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_LoadStock(t *testing.T) {
	path := writeFile(t, "onshelves.txt", "A1#5\nB2#30  \n\nC3#0\r\n")

	records, err := NewLoader().LoadStock(path)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, entities.ProductCode("A1"), records[0].ProductCode)
	assert.Equal(t, entities.Quantity(5), records[0].QuantityRemaining)
	assert.Equal(t, entities.Quantity(30), records[1].QuantityRemaining)
	assert.Equal(t, entities.ProductCode("C3"), records[2].ProductCode)
	assert.Equal(t, entities.Quantity(0), records[2].QuantityRemaining)
}

func TestLoader_LoadOffers(t *testing.T) {
	path := writeFile(t, "availability.txt", "A1,5550100000,2.00\nA1,5550200000,1.5\n")

	offers, err := NewLoader().LoadOffers(path)
	require.NoError(t, err)
	require.Len(t, offers, 2)

	assert.Equal(t, entities.Phone("5550100000"), offers[0].SupplierPhone)
	assert.True(t, offers[0].UnitPrice.Equal(decimal.NewFromInt(2)))
	assert.True(t, offers[1].UnitPrice.Equal(decimal.RequireFromString("1.5")))
}

func TestLoader_LoadProductsAndSuppliers(t *testing.T) {
	loader := NewLoader()

	products, err := loader.LoadProducts(writeFile(t, "products.txt", "A1;Widget, large\nB2;Gadget\n"))
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Widget, large", products[0].Name)

	suppliers, err := loader.LoadSuppliers(writeFile(t, "suppliers.txt", "5550100000;Acme Supply\n"))
	require.NoError(t, err)
	require.Len(t, suppliers, 1)
	assert.Equal(t, entities.Phone("5550100000"), suppliers[0].Phone)
	assert.Equal(t, "Acme Supply", suppliers[0].Name)
}

func TestLoader_ParseErrors(t *testing.T) {
	loader := NewLoader()

	testCases := []struct {
		name     string
		file     string
		content  string
		load     func(string) error
		wantLine int
	}{
		{
			name:     "stock missing delimiter",
			file:     "onshelves.txt",
			content:  "A1#5\nB2 30\n",
			load:     func(p string) error { _, err := loader.LoadStock(p); return err },
			wantLine: 2,
		},
		{
			name:     "stock non-numeric quantity",
			file:     "onshelves.txt",
			content:  "A1#five\n",
			load:     func(p string) error { _, err := loader.LoadStock(p); return err },
			wantLine: 1,
		},
		{
			name:     "stock negative quantity",
			file:     "onshelves.txt",
			content:  "A1#-3\n",
			load:     func(p string) error { _, err := loader.LoadStock(p); return err },
			wantLine: 1,
		},
		{
			name:     "availability non-numeric price",
			file:     "availability.txt",
			content:  "A1,5550100000,2.00\nB2,5550100000,cheap\n",
			load:     func(p string) error { _, err := loader.LoadOffers(p); return err },
			wantLine: 2,
		},
		{
			name:     "availability too many fields",
			file:     "availability.txt",
			content:  "A1,5550100000,2.00,extra\n",
			load:     func(p string) error { _, err := loader.LoadOffers(p); return err },
			wantLine: 1,
		},
		{
			name:     "products wrong delimiter",
			file:     "products.txt",
			content:  "A1,Widget\n",
			load:     func(p string) error { _, err := loader.LoadProducts(p); return err },
			wantLine: 1,
		},
		{
			name:     "suppliers extra field",
			file:     "suppliers.txt",
			content:  "5550100000;Acme;Inc\n",
			load:     func(p string) error { _, err := loader.LoadSuppliers(p); return err },
			wantLine: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.load(writeFile(t, tc.file, tc.content))

			var parseErr *entities.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tc.file, parseErr.File)
			assert.Equal(t, tc.wantLine, parseErr.Line)
		})
	}
}

func TestLoader_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "onshelves.txt")

	_, err := NewLoader().LoadStock(missing)
	require.Error(t, err)
	assert.True(t, errors.Is(err, entities.ErrFileNotFound))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), missing)
}
