package user

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"
)

type Handler struct {
	userService Service
}

func NewHandler(userService Service) *Handler {
	return &Handler{
		userService: userService,
	}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("JSON encoding error: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

// projection returned to clients; the password hash is never echoed.
type userProjection struct {
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func projectUser(user *User) userProjection {
	return userProjection{
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Name     string `json:"name"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.userService.Register(req.Email, req.Name, req.Password)
	if err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			respondError(w, http.StatusConflict, err.Error())
			return
		} else if errors.Is(err, ErrInvalidEmail) || errors.Is(err, ErrEmailLength) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "Could not register user")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "User created successfully",
		"name":    user.Name,
	})
}

func (h *Handler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")

	user, err := h.userService.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Could not retrieve user")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "User retrieved successfully",
		"user":    projectUser(user),
	})
}

func (h *Handler) HandleGetUsers(w http.ResponseWriter, _ *http.Request) {
	users, err := h.userService.GetAllUsers()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Could not retrieve users")
		return
	}

	projections := make([]userProjection, 0, len(users))
	for i := range users {
		projections = append(projections, projectUser(&users[i]))
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Users retrieved successfully",
		"users":   projections,
	})
}
