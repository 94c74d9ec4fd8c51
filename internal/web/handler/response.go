package handler

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/metropolitan-website/metropolitan-backend/internal/db/store"
)

// ErrorResponse is the body of every non validation error.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// DeleteResponse confirms a deletion.
type DeleteResponse struct {
	Message string `json:"message"`
	ID      uint64 `json:"id"`
}

// NotFound turns store.ErrNotFound into a 404 naming the resource. Other errors pass through.
func NotFound(err error, resource string, id uint64) error {
	if errors.Is(err, store.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("%s not found with id: %d", resource, id))
	}

	return err
}

// Deleted sends the delete confirmation for resource.
func Deleted(c *fiber.Ctx, resource string, id uint64) error {
	return c.JSON(DeleteResponse{Message: resource + " deleted successfully", ID: id})
}

// Created sends v with status 201.
func Created(c *fiber.Ctx, v any) error {
	return c.Status(fiber.StatusCreated).JSON(v)
}
