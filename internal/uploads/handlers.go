package uploads

import (
	"io"
	"mime/multipart"

	"regive-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *Service
}

// DonationImages POST /api/v1/uploads/donation-images — multipart field
// "donation_image", up to 5 files. Returns the public URLs to reference from
// a donation submission.
func (h *Handlers) DonationImages(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return response.Error(c, "Invalid multipart form", fiber.StatusBadRequest, nil)
	}
	files, err := readFiles(form.File["donation_image"])
	if err != nil {
		return response.Error(c, "Failed to read uploaded files", fiber.StatusBadRequest, nil)
	}
	urls, err := h.Service.StoreImages(c.Context(), files)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Images uploaded successfully", fiber.Map{"urls": urls})
}

// EventImage POST /api/v1/uploads/event-image — single "image" file.
func (h *Handlers) EventImage(c *fiber.Ctx) error {
	header, err := c.FormFile("image")
	if err != nil {
		return response.Error(c, "Please upload an image", fiber.StatusBadRequest, nil)
	}
	files, err := readFiles([]*multipart.FileHeader{header})
	if err != nil {
		return response.Error(c, "Failed to read uploaded file", fiber.StatusBadRequest, nil)
	}
	urls, err := h.Service.StoreImages(c.Context(), files)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Image uploaded successfully", fiber.Map{"url": urls[0]})
}

func readFiles(headers []*multipart.FileHeader) ([]File, error) {
	files := make([]File, 0, len(headers))
	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		files = append(files, File{Name: header.Filename, Data: data})
	}
	return files, nil
}
