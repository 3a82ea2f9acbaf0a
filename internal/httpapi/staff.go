package httpapi

import (
	"posservice/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetEmployees handles GET /getemployees.
func (h *Handlers) GetEmployees(c *gin.Context) {
	employees, err := h.staff.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, employees)
}

type addEmployeeRequest struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsManager bool   `json:"is_manager"`
}

// AddEmployee handles POST /addemployee.
func (h *Handlers) AddEmployee(c *gin.Context) {
	var body addEmployeeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, domain.ValidationError("invalid request body"))
		return
	}

	var customID *uuid.UUID
	if body.ID != "" {
		id, err := uuid.Parse(body.ID)
		if err != nil {
			respondError(c, domain.ValidationError("invalid uuid format for employee id"))
			return
		}
		customID = &id
	}

	employee, err := h.staff.Add(c.Request.Context(), customID, body.Name, body.IsManager)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, employee)
}

type updateEmployeeRequest struct {
	Name      *string `json:"name"`
	IsManager *bool   `json:"is_manager"`
}

// UpdateEmployee handles PUT /updateemployee/:id.
func (h *Handlers) UpdateEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, domain.ValidationError("invalid employee id"))
		return
	}

	var body updateEmployeeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, domain.ValidationError("invalid request body"))
		return
	}

	employee, uerr := h.staff.Update(c.Request.Context(), id, body.Name, body.IsManager)
	if uerr != nil {
		respondError(c, uerr)
		return
	}
	respondData(c, employee)
}

// DeleteEmployee handles DELETE /deleteemployee/:id.
func (h *Handlers) DeleteEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, domain.ValidationError("invalid employee id"))
		return
	}

	if err := h.staff.Remove(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, gin.H{"id": id})
}
