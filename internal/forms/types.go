package forms

import "github.com/g-villarinho/flash-buy-admin/internal/catalog"

// BillboardForm creates or edits a billboard. Image is required on
// create; edit forms leave it nil to keep the current banner.
type BillboardForm struct {
	Label string              `form:"label" validate:"required"`
	Image *catalog.FileUpload `form:"image"`
}

// CategoryForm creates or edits a category.
type CategoryForm struct {
	Name        string `form:"name" validate:"required"`
	BillboardID string `form:"billboardId" validate:"required"`
}

// SizeForm creates or edits a size.
type SizeForm struct {
	Name  string `form:"name" validate:"required"`
	Value string `form:"value" validate:"required"`
}

// ColorForm creates or edits a color. Hex accepts the 3- and 6-digit
// syntaxes ("#fff", "#FFFFFF").
type ColorForm struct {
	Name string `form:"name" validate:"required"`
	Hex  string `form:"hex" validate:"required,hexcolor"`
}

// ProductForm creates or edits a product. Price is the raw user input,
// canonicalized to cents on submit. Exactly one of IsFeatured/IsArchived
// must be set; the struct-level rule enforces it.
type ProductForm struct {
	Name       string               `form:"name" validate:"required"`
	Price      string               `form:"price" validate:"required,price"`
	CategoryID string               `form:"categoryId" validate:"required"`
	SizeID     string               `form:"sizeId" validate:"required"`
	ColorID    string               `form:"colorId" validate:"required"`
	IsFeatured bool                 `form:"isFeatured"`
	IsArchived bool                 `form:"isArchived"`
	Images     []catalog.FileUpload `form:"images" validate:"min=1,max=5"`
}

// StoreSettingsForm renames a store.
type StoreSettingsForm struct {
	Name string `form:"name" validate:"required"`
}

// CreateStoreForm is the onboarding modal's form.
type CreateStoreForm struct {
	Name string `form:"name" validate:"required"`
}

// RegisterForm creates an account.
type RegisterForm struct {
	Name  string `form:"name" validate:"required"`
	Email string `form:"email" validate:"required,email"`
}

// LoginForm starts an email login.
type LoginForm struct {
	Email string `form:"email" validate:"required,email"`
}

// VerifyCodeForm submits the OTP code.
type VerifyCodeForm struct {
	Code string `form:"code" validate:"required,len=6"`
}
