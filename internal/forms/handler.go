package forms

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/g-villarinho/flash-buy-admin/internal/apierr"
	"github.com/g-villarinho/flash-buy-admin/internal/catalog"
	"github.com/g-villarinho/flash-buy-admin/internal/querycache"
	"github.com/g-villarinho/flash-buy-admin/internal/screens"
)

// Outcome is the result of a form submission. Exactly one shape applies:
// Fields set means the form stays open with inline errors, Notice alone
// means a toast (failure keeps the form populated for retry), Redirect
// means the write landed and the UI should navigate.
type Outcome struct {
	Saved    bool
	Fields   FieldErrors
	Notice   string
	Redirect string
}

func rejected(fields FieldErrors) Outcome { return Outcome{Fields: fields} }

const genericFailure = "Ops! Algo deu errado. Tente novamente mais tarde."

// Handler runs the submit pipeline: schema validation, the API write,
// conflict mapping and cache bookkeeping.
type Handler struct {
	api   *catalog.Client
	cache *querycache.Cache
	log   zerolog.Logger
}

func NewHandler(api *catalog.Client, cache *querycache.Cache, log zerolog.Logger) *Handler {
	return &Handler{api: api, cache: cache, log: log.With().Str("component", "forms").Logger()}
}

// failure logs the write error and folds it into an Outcome: conflicts
// land on the form's uniqueness field, anything else becomes a toast.
func (h *Handler) failure(err error, op, conflictFallback, conflictMsg string) Outcome {
	h.log.Warn().Err(err).Str("op", op).Msg("submit failed")
	if fields := MapConflict(err, conflictFallback, conflictMsg); fields != nil {
		return rejected(fields)
	}
	return Outcome{Notice: genericFailure}
}

// saved invalidates every cached page of the written resource and points
// the UI at its list screen.
func (h *Handler) saved(storeID uuid.UUID, d screens.Descriptor, redirectTo string) Outcome {
	h.cache.Invalidate(d.InvalidationKey())
	if redirectTo == "" {
		redirectTo = fmt.Sprintf("/%s/%s", storeID, d.Resource)
	}
	return Outcome{Saved: true, Redirect: redirectTo}
}

// ==================== Billboards ====================

// CreateBillboard submits a new billboard. redirectTo overrides the
// default list destination; the category form uses it to create a
// billboard inline and come back.
func (h *Handler) CreateBillboard(ctx context.Context, storeID uuid.UUID, form BillboardForm, redirectTo string) Outcome {
	fields := Validate(form)
	if form.Image == nil {
		if fields == nil {
			fields = FieldErrors{}
		}
		fields["image"] = "A imagem é obrigatória."
	}
	if fields.Any() {
		return rejected(fields)
	}

	_, err := h.api.CreateBillboard(ctx, storeID, catalog.CreateBillboardInput{Label: form.Label, Image: *form.Image})
	if err != nil {
		return h.failure(err, "create billboard", "label", "Já existe um painel com esse nome.")
	}
	return h.saved(storeID, screens.Billboards, redirectTo)
}

// UpdateBillboard submits a billboard edit. A nil Image keeps the
// current banner.
func (h *Handler) UpdateBillboard(ctx context.Context, storeID, billboardID uuid.UUID, form BillboardForm) Outcome {
	if fields := Validate(form); fields.Any() {
		return rejected(fields)
	}
	in := catalog.UpdateBillboardInput{Label: form.Label, Image: form.Image}
	if err := h.api.UpdateBillboard(ctx, storeID, billboardID, in); err != nil {
		return h.failure(err, "update billboard", "label", "Já existe um painel com esse nome.")
	}
	return h.saved(storeID, screens.Billboards, "")
}

// ==================== Categories ====================

func (h *Handler) CreateCategory(ctx context.Context, storeID uuid.UUID, form CategoryForm) Outcome {
	if fields := Validate(form); fields.Any() {
		return rejected(fields)
	}
	in := catalog.CategoryInput{Name: form.Name, BillboardID: form.BillboardID}
	if _, err := h.api.CreateCategory(ctx, storeID, in); err != nil {
		return h.failure(err, "create category", "name", "Já existe uma categoria com esse nome.")
	}
	return h.saved(storeID, screens.Categories, "")
}

func (h *Handler) UpdateCategory(ctx context.Context, storeID, categoryID uuid.UUID, form CategoryForm) Outcome {
	if fields := Validate(form); fields.Any() {
		return rejected(fields)
	}
	in := catalog.CategoryInput{Name: form.Name, BillboardID: form.BillboardID}
	if err := h.api.UpdateCategory(ctx, storeID, categoryID, in); err != nil {
		return h.failure(err, "update category", "name", "Já existe uma categoria com esse nome.")
	}
	return h.saved(storeID, screens.Categories, "")
}

// ==================== Sizes ====================

func (h *Handler) CreateSize(ctx context.Context, storeID uuid.UUID, form SizeForm) Outcome {
	if fields := Validate(form); fields.Any() {
		return rejected(fields)
	}
	if _, err := h.api.CreateSize(ctx, storeID, catalog.SizeInput{Name: form.Name, Value: form.Value}); err != nil {
		return h.failure(err, "create size", "name", "Já existe um tamanho com esse nome.")
	}
	return h.saved(storeID, screens.Sizes, "")
}

func (h *Handler) UpdateSize(ctx context.Context, storeID, sizeID uuid.UUID, form SizeForm) Outcome {
	if fields := Validate(form); fields.Any() {
		return rejected(fields)
	}
	if err := h.api.UpdateSize(ctx, storeID, sizeID, catalog.SizeInput{Name: form.Name, Value: form.Value}); err != nil {
		return h.failure(err, "update size", "name", "Já existe um tamanho com esse nome.")
	}
	return h.saved(storeID, screens.Sizes, "")
}

// ==================== Colors ====================

// Color conflicts map to the hex field: uniqueness is on the value, two
// names may share a shade but not the other way around.

func (h *Handler) CreateColor(ctx context.Context, storeID uuid.UUID, form ColorForm) Outcome {
	if fields := Validate(form); fields.Any() {
		return rejected(fields)
	}
	if _, err := h.api.CreateColor(ctx, storeID, catalog.ColorInput{Name: form.Name, Hex: form.Hex}); err != nil {
		return h.failure(err, "create color", "hex", "Já existe uma cor com este valor nessa loja.")
	}
	return h.saved(storeID, screens.Colors, "")
}

func (h *Handler) UpdateColor(ctx context.Context, storeID, colorID uuid.UUID, form ColorForm) Outcome {
	if fields := Validate(form); fields.Any() {
		return rejected(fields)
	}
	if err := h.api.UpdateColor(ctx, storeID, colorID, catalog.ColorInput{Name: form.Name, Hex: form.Hex}); err != nil {
		return h.failure(err, "update color", "hex", "Já existe uma cor com este valor nessa loja.")
	}
	return h.saved(storeID, screens.Colors, "")
}

// ==================== Products ====================

func (form ProductForm) input() (catalog.ProductInput, FieldErrors) {
	fields := FieldErrors{}

	cents, err := ParsePrice(form.Price)
	if err != nil {
		fields["price"] = messageFor("price", "")
	}
	categoryID := parseRef(form.CategoryID, "categoryId", fields)
	sizeID := parseRef(form.SizeID, "sizeId", fields)
	colorID := parseRef(form.ColorID, "colorId", fields)
	if fields.Any() {
		return catalog.ProductInput{}, fields
	}

	return catalog.ProductInput{
		Name:         form.Name,
		PriceInCents: cents,
		IsFeatured:   form.IsFeatured,
		IsArchived:   form.IsArchived,
		CategoryID:   categoryID,
		ColorID:      colorID,
		SizeID:       sizeID,
		Images:       form.Images,
	}, nil
}

func parseRef(raw, field string, fields FieldErrors) uuid.UUID {
	id, err := uuid.Parse(raw)
	if err != nil {
		fields[field] = "Selecione uma opção válida."
	}
	return id
}

func (h *Handler) CreateProduct(ctx context.Context, storeID uuid.UUID, form ProductForm) Outcome {
	if fields := Validate(form); fields.Any() {
		return rejected(fields)
	}
	in, fields := form.input()
	if fields.Any() {
		return rejected(fields)
	}
	if _, err := h.api.CreateProduct(ctx, storeID, in); err != nil {
		return h.failure(err, "create product", "name", "Já existe um produto com esse nome.")
	}
	return h.saved(storeID, screens.Products, "")
}

func (h *Handler) UpdateProduct(ctx context.Context, storeID, productID uuid.UUID, form ProductForm) Outcome {
	if fields := Validate(form); fields.Any() {
		return rejected(fields)
	}
	in, fields := form.input()
	if fields.Any() {
		return rejected(fields)
	}
	if err := h.api.UpdateProduct(ctx, storeID, productID, in); err != nil {
		return h.failure(err, "update product", "name", "Já existe um produto com esse nome.")
	}
	return h.saved(storeID, screens.Products, "")
}

// ==================== Stores ====================

const storeConflictMsg = "Já existe uma loja com esse nome."

// CreateStore submits the onboarding modal and lands on the new store's
// dashboard.
func (h *Handler) CreateStore(ctx context.Context, form CreateStoreForm) Outcome {
	if fields := Validate(form); fields.Any() {
		return rejected(fields)
	}
	storeID, err := h.api.CreateStore(ctx, form.Name)
	if err != nil {
		return h.failure(err, "create store", "name", storeConflictMsg)
	}
	h.cache.Invalidate(screens.StoresKey())
	h.cache.Invalidate(screens.FirstStoreKey())
	return Outcome{Saved: true, Redirect: "/" + storeID.String()}
}

// UpdateStoreSettings renames a store. On success the cached store lists
// and the store detail are patched in place, no refetch.
func (h *Handler) UpdateStoreSettings(ctx context.Context, storeID uuid.UUID, form StoreSettingsForm) Outcome {
	if fields := Validate(form); fields.Any() {
		return rejected(fields)
	}
	if err := h.api.UpdateStore(ctx, storeID, form.Name); err != nil {
		return h.failure(err, "update store", "name", storeConflictMsg)
	}

	h.cache.UpdateMatching(screens.StoresKey(), func(_ querycache.Key, old any) any {
		list, ok := old.([]catalog.Store)
		if !ok {
			return old
		}
		patched := make([]catalog.Store, len(list))
		copy(patched, list)
		for i := range patched {
			if patched[i].ID == storeID {
				patched[i].Name = form.Name
			}
		}
		return patched
	})
	h.cache.Update(screens.StoreKey(storeID), func(old any) any {
		store, ok := old.(catalog.Store)
		if !ok {
			return old
		}
		store.Name = form.Name
		return store
	})

	return Outcome{Saved: true, Notice: "Loja atualizada com sucesso."}
}

// DeleteStore removes a store. A conflict means it still has products or
// categories; the UI warns and stays put.
func (h *Handler) DeleteStore(ctx context.Context, storeID uuid.UUID) Outcome {
	if err := h.api.DeleteStore(ctx, storeID); err != nil {
		h.log.Warn().Err(err).Str("op", "delete store").Msg("submit failed")
		if apierr.IsConflict(err) {
			return Outcome{Notice: "Remova os produtos e categorias antes de excluir a loja."}
		}
		return Outcome{Notice: genericFailure}
	}

	h.cache.Remove(screens.FirstStoreKey())
	h.cache.Remove(screens.StoresKey())
	h.cache.Remove(screens.StoreKey(storeID))
	return Outcome{Saved: true, Redirect: "/"}
}

// ==================== Auth ====================

// Register creates an account and moves to the OTP screen.
func (h *Handler) Register(ctx context.Context, form RegisterForm) Outcome {
	if fields := Validate(form); fields.Any() {
		return rejected(fields)
	}
	err := h.api.Register(ctx, catalog.RegisterInput{Name: form.Name, Email: form.Email})
	if err != nil {
		return h.failure(err, "register", "email", "Já existe uma conta com esse e-mail.")
	}
	return Outcome{Saved: true, Redirect: "/verify-code"}
}

// Login starts an email login and moves to the OTP screen. An unknown
// e-mail comes back as a field error rather than a toast.
func (h *Handler) Login(ctx context.Context, form LoginForm) Outcome {
	if fields := Validate(form); fields.Any() {
		return rejected(fields)
	}
	if err := h.api.Login(ctx, form.Email); err != nil {
		if apierr.IsNotFound(err) {
			return rejected(FieldErrors{"email": "Nenhuma conta encontrada com esse e-mail."})
		}
		return h.failure(err, "login", "email", "Já existe uma conta com esse e-mail.")
	}
	return Outcome{Saved: true, Redirect: "/verify-code"}
}

// VerifyCode submits the OTP and lands on the dashboard resolver.
func (h *Handler) VerifyCode(ctx context.Context, form VerifyCodeForm) Outcome {
	if fields := Validate(form); fields.Any() {
		return rejected(fields)
	}
	if err := h.api.VerifyCode(ctx, form.Code); err != nil {
		if apierr.KindOf(err) == apierr.KindValidation || apierr.IsUnauthorized(err) || apierr.IsNotFound(err) {
			return rejected(FieldErrors{"code": "Código inválido ou expirado."})
		}
		h.log.Warn().Err(err).Str("op", "verify code").Msg("submit failed")
		return Outcome{Notice: genericFailure}
	}
	return Outcome{Saved: true, Redirect: "/"}
}
