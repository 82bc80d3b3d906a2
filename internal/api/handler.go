// Package api exposes the converter over HTTP for callers that cannot shell
// out to the CLI. One upload in, one conversion result out.
package api

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"github.com/Xhelo-hub/bank-select-converter/internal/converter"
	"github.com/Xhelo-hub/bank-select-converter/internal/extractor"
	"github.com/Xhelo-hub/bank-select-converter/internal/profile"
)

// Handler serves the conversion endpoints.
type Handler struct {
	// OutputDir receives converted CSVs. Defaults to "export".
	OutputDir string
}

// Register mounts the routes on the app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/health", h.HandleHealth)
	app.Get("/banks", h.HandleBanks)
	app.Post("/convert", h.HandleConvert)
}

// HandleHealth reports liveness.
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// HandleBanks lists the supported bank profiles.
func (h *Handler) HandleBanks(c *fiber.Ctx) error {
	type bankInfo struct {
		ID     string   `json:"id"`
		Name   string   `json:"name"`
		Inputs []string `json:"inputs"`
	}
	var banks []bankInfo
	for _, p := range profile.All() {
		inputs := make([]string, len(p.Inputs))
		for i, k := range p.Inputs {
			inputs[i] = string(k)
		}
		banks = append(banks, bankInfo{ID: p.ID, Name: p.Bank, Inputs: inputs})
	}
	return c.JSON(banks)
}

// HandleConvert accepts a multipart statement upload and returns the
// conversion result. The bank may be forced with the "bank" form value;
// otherwise it is detected from the file.
func (h *Handler) HandleConvert(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "missing file upload")
	}
	if bank := c.FormValue("bank"); bank != "" {
		if _, err := profile.Get(bank); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}

	tmpDir, err := os.MkdirTemp("", "statement-upload-*")
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not stage upload")
	}
	defer os.RemoveAll(tmpDir)

	staged := filepath.Join(tmpDir, filepath.Base(file.Filename))
	if err := c.SaveFile(file, staged); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not stage upload")
	}

	res, err := converter.Convert(c.UserContext(), staged, converter.Options{
		BankID:    c.FormValue("bank"),
		OutputDir: h.outputDir(),
	})
	if err != nil {
		status := fiber.StatusUnprocessableEntity
		if isClientError(err) {
			status = fiber.StatusBadRequest
		}
		return fiber.NewError(status, err.Error())
	}
	return c.JSON(res)
}

func (h *Handler) outputDir() string {
	if h.OutputDir != "" {
		return h.OutputDir
	}
	return "export"
}

func isClientError(err error) bool {
	switch {
	case errors.Is(err, profile.ErrUnknownBank),
		errors.Is(err, extractor.ErrEmptyDocument),
		errors.Is(err, extractor.ErrUnreadableDocument):
		return true
	}
	return false
}
