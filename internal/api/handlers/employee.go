package handlers

import (
	"net/http"
	"strconv"

	"vacation-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EmployeeHandler handles HTTP requests for employee operations
type EmployeeHandler struct {
	employeeService service.EmployeeServiceInterface
	holidayService  service.HolidayServiceInterface
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employeeService service.EmployeeServiceInterface, holidayService service.HolidayServiceInterface) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
		holidayService:  holidayService,
	}
}

// CreateEmployee handles POST /employees
// @Summary Register a new employee
// @Description Register an employee; they start unassigned until placed in a team
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body service.CreateEmployeeRequest true "Employee data"
// @Success 201 {object} service.EmployeeResponse "Successfully registered employee"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Security BearerAuth
// @Router /employees [post]
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req service.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employee, err := h.employeeService.Create(&req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, employee)
}

// GetEmployee handles GET /employees/:id
// @Summary Get employee by ID
// @Description Get an employee with their roles and team relationships
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Success 200 {object} service.EmployeeDetailsResponse "Successfully retrieved employee"
// @Failure 400 {object} ErrorResponse "Invalid employee ID"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Security BearerAuth
// @Router /employees/{id} [get]
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee ID"})
		return
	}

	employee, err := h.employeeService.GetByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, employee)
}

// ListEmployees handles GET /employees
// @Summary List employees
// @Description Get employees with pagination, each annotated with current role labels
// @Tags employees
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.EmployeeListResponse "Successfully retrieved employees"
// @Security BearerAuth
// @Router /employees [get]
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	employees, err := h.employeeService.List(page, pageSize)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, employees)
}

// ListUnassignedEmployees handles GET /employees/unassigned
// @Summary List unassigned employees
// @Description Get employees who are neither members nor leaders of any team
// @Tags employees
// @Accept json
// @Produce json
// @Success 200 {array} service.EmployeeResponse "Successfully retrieved employees"
// @Security BearerAuth
// @Router /employees/unassigned [get]
func (h *EmployeeHandler) ListUnassignedEmployees(c *gin.Context) {
	employees, err := h.employeeService.ListUnassigned()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, employees)
}

// UpdateEmployee handles PUT /employees/:id
// @Summary Update an employee's profile
// @Description Update profile fields; team membership changes only through team operations
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Param employee body service.UpdateEmployeeRequest true "Updated profile"
// @Success 200 {object} service.EmployeeResponse "Successfully updated employee"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Security BearerAuth
// @Router /employees/{id} [put]
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee ID"})
		return
	}

	var req service.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employee, err := h.employeeService.Update(id, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, employee)
}

// DeleteEmployee handles DELETE /employees/:id
// @Summary Remove an employee
// @Description Remove an employee; current team leaders must be replaced first
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Success 204 "Successfully removed employee"
// @Failure 400 {object} ErrorResponse "Invalid employee ID"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Failure 409 {object} ErrorResponse "Employee still leads a team"
// @Security BearerAuth
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee ID"})
		return
	}

	if err := h.employeeService.Delete(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetEmployeeHolidays handles GET /employees/:id/holidays
// @Summary List an employee's holiday requests
// @Description Get every holiday request filed by the employee
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Success 200 {array} service.HolidayResponse "Successfully retrieved requests"
// @Failure 400 {object} ErrorResponse "Invalid employee ID"
// @Security BearerAuth
// @Router /employees/{id}/holidays [get]
func (h *EmployeeHandler) GetEmployeeHolidays(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee ID"})
		return
	}

	holidays, err := h.holidayService.ListByRequester(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, holidays)
}
