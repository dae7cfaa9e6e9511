package handler

import (
	"bytes"
	"encoding/json"
	"net/http"

	"catalog/internal/delivery/http/response"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// priceField accepts a price sent either as a JSON number or as a string.
// The raw text is kept so no precision is lost before decimal parsing.
type priceField string

func (p *priceField) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case bytes.Equal(trimmed, []byte("null")):
		*p = ""
	case len(trimmed) > 0 && trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return errors.WithStack(err)
		}
		*p = priceField(s)
	default:
		var n json.Number
		if err := json.Unmarshal(trimmed, &n); err != nil {
			return errors.WithStack(err)
		}
		*p = priceField(n.String())
	}

	return nil
}

type productRequest struct {
	Name        string     `json:"name" validate:"max=255"`
	Description string     `json:"description" validate:"max=10000"`
	Price       priceField `json:"price" validate:"max=32"`
	SupplierID  *string    `json:"supplierId"`
}

// ProductHandler serves /api/products.
type ProductHandler struct {
	uc usecase.ProductUsecase
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) List(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	products, err := h.uc.List(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// Search matches ?q= against product and supplier names.
func (h *ProductHandler) Search(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	products, err := h.uc.Search(c.Request().Context(), userID, c.QueryParam("q"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

func (h *ProductHandler) Get(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	productID, err := pathID(c, "id", domainerrors.ErrProductNotFound)
	if err != nil {
		return err
	}

	product, err := h.uc.Get(c.Request().Context(), userID, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

func (h *ProductHandler) Create(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req productRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := &usecase.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       string(req.Price),
	}
	if req.SupplierID != nil {
		input.SupplierID = *req.SupplierID
	}

	product, err := h.uc.Create(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// Update keeps the current supplier when supplierId is omitted, null or empty.
func (h *ProductHandler) Update(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	productID, err := pathID(c, "id", domainerrors.ErrProductNotFound)
	if err != nil {
		return err
	}

	var req productRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.uc.Update(c.Request().Context(), userID, productID, &usecase.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       string(req.Price),
		SupplierID:  req.SupplierID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

func (h *ProductHandler) Delete(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	productID, err := pathID(c, "id", domainerrors.ErrProductNotFound)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), userID, productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}
