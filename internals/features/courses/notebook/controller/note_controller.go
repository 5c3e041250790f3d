package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnhub_backend/internals/features/courses/notebook/dto"
	"learnhub_backend/internals/features/courses/notebook/model"
	"learnhub_backend/internals/features/courses/notebook/repository"
	helper "learnhub_backend/internals/helpers"
)

var validate = validator.New()

type NoteController struct {
	DB *gorm.DB
}

func NewNoteController(db *gorm.DB) *NoteController {
	return &NoteController{DB: db}
}

func (ctrl *NoteController) List(c *fiber.Ctx) error {
	studentID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	notes, err := repository.NewNoteRepository(ctrl.DB).GetAllFromStudent(studentID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Notes fetched", notes)
}

func (ctrl *NoteController) ListByClass(c *fiber.Ctx) error {
	studentID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	classID, err := uuid.Parse(c.Params("classId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}

	notes, err := repository.NewNoteRepository(ctrl.DB).GetAllFromClass(studentID, classID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Notes fetched", notes)
}

func (ctrl *NoteController) Open(c *fiber.Ctx) error {
	studentID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	noteID, err := uuid.Parse(c.Params("noteId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid note id")
	}

	note, err := repository.NewNoteRepository(ctrl.DB).GetOwn(studentID, noteID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if note == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Note not found")
	}
	return helper.JsonOK(c, "Note fetched", note)
}

func (ctrl *NoteController) Create(c *fiber.Ctx) error {
	studentID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.NewNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	note := &model.NoteModel{
		NoteStudentID: studentID,
		NoteClassID:   req.ClassID,
		NoteTitle:     req.Title,
		NoteContent:   req.Content,
	}
	if _, err := repository.NewNoteRepository(ctrl.DB).Add(note); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Note created", note)
}

func (ctrl *NoteController) Edit(c *fiber.Ctx) error {
	studentID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	noteID, err := uuid.Parse(c.Params("noteId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid note id")
	}

	var req dto.EditNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updated, err := repository.NewNoteRepository(ctrl.DB).
		UpdateOwn(studentID, noteID, req.Title, req.Content)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if !updated {
		return helper.JsonError(c, fiber.StatusNotFound, "Note not found")
	}
	return helper.JsonOK(c, "Note updated", nil)
}

func (ctrl *NoteController) Delete(c *fiber.Ctx) error {
	studentID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	noteID, err := uuid.Parse(c.Params("noteId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid note id")
	}

	deleted, err := repository.NewNoteRepository(ctrl.DB).DeleteOwn(studentID, noteID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if !deleted {
		return helper.JsonError(c, fiber.StatusNotFound, "Note not found")
	}
	return helper.JsonOK(c, "Note deleted", nil)
}
