package controllers

import (
	"net/http"

	"github.com/Akhilus26/firebased-quickbite/entity"
	"github.com/Akhilus26/firebased-quickbite/pkg/resp"
	"github.com/Akhilus26/firebased-quickbite/services"
	"github.com/Akhilus26/firebased-quickbite/utils"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	DisplayName     string `json:"displayName" binding:"required"`
	Phone           string `json:"phone"`
	UserType        string `json:"userType" binding:"omitempty,oneof=student teacher"`
	AdmissionNumber string `json:"admissionNumber"`
	TeacherID       string `json:"teacherId"`
}
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(s *services.AuthService) *AuthController {
	return &AuthController{Service: s}
}

func userJSON(u *entity.User) gin.H {
	return gin.H{
		"id": u.ID, "email": u.Email, "displayName": u.DisplayName,
		"phone": u.Phone, "role": u.Role, "userType": u.UserType,
		"admissionNumber": u.AdmissionNumber, "teacherId": u.TeacherID,
	}
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Service.Register(&services.RegisterIn{
		Email:           req.Email,
		Password:        req.Password,
		DisplayName:     req.DisplayName,
		Phone:           req.Phone,
		UserType:        req.UserType,
		AdmissionNumber: req.AdmissionNumber,
		TeacherID:       req.TeacherID,
	})
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, userJSON(user))
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Service.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"user":  userJSON(user),
	})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Service.Me(utils.CurrentUserID(c))
	if err != nil {
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, userJSON(user))
}
