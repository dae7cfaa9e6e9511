package handler

import (
	"io"
	"net/http"

	"catalog/config"
	"catalog/internal/delivery/http/response"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	imageFormField     = "image"
	productIDFormField = "productId"
	uploadCacheControl = "public, max-age=86400"
)

// ImageHandler serves image uploads, primary selection and the public file route.
type ImageHandler struct {
	uc       usecase.ImageUsecase
	maxBytes int64
}

// NewImageHandler is the constructor for ImageHandler, injected by Fx.
func NewImageHandler(uc usecase.ImageUsecase, cfg *config.Config) *ImageHandler {
	return &ImageHandler{uc: uc, maxBytes: cfg.Storage.MaxUploadBytes}
}

// Upload accepts multipart/form-data with an "image" file and a "productId" field.
func (h *ImageHandler) Upload(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	input := &usecase.UploadImageInput{ProductID: c.FormValue(productIDFormField)}

	fileHeader, err := c.FormFile(imageFormField)
	switch {
	case errors.Is(err, http.ErrMissingFile):
	case err != nil:
		return errors.Wrap(domainerrors.NewValidationError("Invalid multipart body"), err.Error())
	default:
		file, err := fileHeader.Open()
		if err != nil {
			return errors.Wrap(err, "failed to open uploaded file")
		}
		defer file.Close()

		// One byte past the limit is enough for the usecase to reject it.
		input.Data, err = io.ReadAll(io.LimitReader(file, h.maxBytes+1))
		if err != nil {
			return errors.Wrap(err, "failed to read uploaded file")
		}
		input.Filename = fileHeader.Filename
	}

	output, err := h.uc.Upload(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Image uploaded successfully")
}

// Delete removes one image; the refreshed product is returned.
func (h *ImageHandler) Delete(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	imageID, err := pathID(c, "imageId", domainerrors.ErrImageNotFound)
	if err != nil {
		return err
	}

	product, err := h.uc.Delete(c.Request().Context(), userID, imageID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Image deleted successfully")
}

func (h *ImageHandler) SetPrimary(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	imageID, err := pathID(c, "imageId", domainerrors.ErrImageNotFound)
	if err != nil {
		return err
	}

	product, err := h.uc.SetPrimary(c.Request().Context(), userID, imageID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Primary image updated")
}

// Serve streams a stored payload. It is public: image URLs are handed to browsers as-is.
func (h *ImageHandler) Serve(c echo.Context) error {
	reader, contentType, err := h.uc.OpenFile(c.Request().Context(), c.Param("*"))
	if err != nil {
		return errors.WithStack(err)
	}
	defer reader.Close()

	header := c.Response().Header()
	header.Set(echo.HeaderCacheControl, uploadCacheControl)
	header.Set(echo.HeaderXContentTypeOptions, "nosniff")

	return c.Stream(http.StatusOK, contentType, reader)
}
