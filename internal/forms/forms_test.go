package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g-villarinho/flash-buy-admin/internal/catalog"
)

func validProductForm() ProductForm {
	return ProductForm{
		Name:       "Camiseta básica",
		Price:      "59.90",
		CategoryID: "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d",
		SizeID:     "1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed",
		ColorID:    "6ec0bd7f-11c0-43da-975e-2a8ad9ebae0b",
		IsFeatured: true,
		Images:     []catalog.FileUpload{{Filename: "front.png", Content: []byte("png")}},
	}
}

func TestValidateRequiredFields(t *testing.T) {
	fields := Validate(CategoryForm{})

	require.True(t, fields.Any())
	assert.Equal(t, "Este campo é obrigatório.", fields["name"])
	assert.Equal(t, "Este campo é obrigatório.", fields["billboardId"])
}

func TestValidateColorHex(t *testing.T) {
	tests := []struct {
		hex string
		ok  bool
	}{
		{"#fff", true},
		{"#FFFFFF", true},
		{"#1a2b3c", true},
		{"fff", false},
		{"#ffg", false},
		{"#12345", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			fields := Validate(ColorForm{Name: "Branco", Hex: tt.hex})
			if tt.ok {
				assert.False(t, fields.Any(), "unexpected errors: %v", fields)
			} else {
				assert.Contains(t, fields, "hex")
			}
		})
	}
}

func TestProductFlagsExclusive(t *testing.T) {
	t.Run("neither flag blames featured", func(t *testing.T) {
		form := validProductForm()
		form.IsFeatured = false

		fields := Validate(form)
		assert.Equal(t, "Selecione pelo menos uma opção: Destaque ou Arquivado.", fields["isFeatured"])
	})

	t.Run("both flags blames archived", func(t *testing.T) {
		form := validProductForm()
		form.IsArchived = true

		fields := Validate(form)
		assert.Equal(t, "Não é possível selecionar Destaque e Arquivado simultaneamente.", fields["isArchived"])
	})

	t.Run("exactly one passes", func(t *testing.T) {
		featured := validProductForm()
		assert.False(t, Validate(featured).Any())

		archived := validProductForm()
		archived.IsFeatured = false
		archived.IsArchived = true
		assert.False(t, Validate(archived).Any())
	})
}

func TestProductImagesBounds(t *testing.T) {
	form := validProductForm()
	form.Images = nil
	assert.Contains(t, Validate(form), "images")

	form.Images = make([]catalog.FileUpload, catalog.MaxProductImages+1)
	assert.Contains(t, Validate(form), "images")
}

func TestVerifyCodeLength(t *testing.T) {
	assert.Contains(t, Validate(VerifyCodeForm{Code: "123"}), "code")
	assert.False(t, Validate(VerifyCodeForm{Code: "123456"}).Any())
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in    string
		cents int64
		ok    bool
	}{
		{"19.90", 1990, true},
		{"10", 1000, true},
		{" 5.5 ", 550, true},
		{"0.01", 1, true},
		{"0", 0, false},
		{"-1", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			cents, err := ParsePrice(tt.in)
			if !tt.ok {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.cents, cents)
		})
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "19.90", FormatPrice(1990))
	assert.Equal(t, "0.01", FormatPrice(1))
}
