package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"lendingapi/internal/httpx"
	"lendingapi/internal/member"
)

type MemberHandler struct {
	members member.Store
}

func NewMemberHandler(members member.Store) *MemberHandler {
	return &MemberHandler{members: members}
}

type createMemberRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=100"`
	Email string `json:"email" validate:"required,email"`
}

type profileRequest struct {
	Address string `json:"address" validate:"required,min=1,max=255"`
	Phone   string `json:"phone" validate:"required,phone"`
}

// @Summary Register a member
// @Tags members
// @Accept json
// @Produce json
// @Success 201 {object} httpx.SuccessResponse
// @Router /members [post]
func (h *MemberHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "bad_request", "invalid JSON body", nil)
		return
	}
	if details := ValidateStruct(req); details != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", "request validation failed", details)
		return
	}

	m := member.Member{Name: req.Name, Email: req.Email}
	if err := h.members.CreateMember(r.Context(), &m); err != nil {
		writeDomainError(w, err)
		return
	}
	httpx.JSONSuccess(w, http.StatusCreated, m)
}

// Profile routes /members/{id}/profile between create, read and update.
func (h *MemberHandler) Profile(w http.ResponseWriter, r *http.Request) {
	memberID, ok := profileMemberID(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		p, err := h.members.GetProfile(r.Context(), memberID)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		httpx.JSONSuccess(w, http.StatusOK, p)

	case http.MethodPost, http.MethodPut:
		var req profileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "bad_request", "invalid JSON body", nil)
			return
		}
		if details := ValidateStruct(req); details != nil {
			httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", "request validation failed", details)
			return
		}

		p := member.Profile{MemberID: memberID, Address: req.Address, Phone: req.Phone}
		var err error
		if r.Method == http.MethodPost {
			err = h.members.CreateProfile(r.Context(), &p)
		} else {
			err = h.members.UpdateProfile(r.Context(), &p)
		}
		if err != nil {
			writeDomainError(w, err)
			return
		}
		status := http.StatusOK
		if r.Method == http.MethodPost {
			status = http.StatusCreated
		}
		httpx.JSONSuccess(w, status, p)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// profileMemberID picks the member id out of /members/{id}/profile.
func profileMemberID(path string) (string, bool) {
	rest := strings.TrimPrefix(path, "/members/")
	parts := strings.Split(rest, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] != "profile" {
		return "", false
	}
	return parts[0], true
}
