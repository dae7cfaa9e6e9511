package handler

import (
	"net/http"

	"catalog/internal/delivery/http/response"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type supplierRequest struct {
	Name  string `json:"name" validate:"max=255"`
	Email string `json:"email" validate:"max=255"`
	Phone string `json:"phone" validate:"max=64"`
}

func (r *supplierRequest) toInput() *usecase.SupplierInput {
	return &usecase.SupplierInput{Name: r.Name, Email: r.Email, Phone: r.Phone}
}

// SupplierHandler serves /api/suppliers.
type SupplierHandler struct {
	uc usecase.SupplierUsecase
}

// NewSupplierHandler is the constructor for SupplierHandler, injected by Fx.
func NewSupplierHandler(uc usecase.SupplierUsecase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

func (h *SupplierHandler) List(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	suppliers, err := h.uc.List(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, suppliers, "")
}

func (h *SupplierHandler) Get(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	supplierID, err := pathID(c, "id", domainerrors.ErrSupplierNotFound)
	if err != nil {
		return err
	}

	supplier, err := h.uc.Get(c.Request().Context(), userID, supplierID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, supplier, "")
}

func (h *SupplierHandler) Create(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req supplierRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	supplier, err := h.uc.Create(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, supplier, "Supplier created successfully")
}

func (h *SupplierHandler) Update(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	supplierID, err := pathID(c, "id", domainerrors.ErrSupplierNotFound)
	if err != nil {
		return err
	}

	var req supplierRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	supplier, err := h.uc.Update(c.Request().Context(), userID, supplierID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, supplier, "Supplier updated successfully")
}

// Delete answers 409 SUPPLIER_IN_USE while products still reference the supplier.
func (h *SupplierHandler) Delete(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	supplierID, err := pathID(c, "id", domainerrors.ErrSupplierNotFound)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), userID, supplierID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Supplier deleted successfully")
}
