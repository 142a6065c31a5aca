package service

import (
	"time"

	"question_bank_backend/internal/model"
	"question_bank_backend/internal/pagination"
	"question_bank_backend/internal/repository"
	"question_bank_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

type UpdateProfileRequest struct {
	FirstName    *string `json:"first_name" binding:"omitempty,max=50"`
	MiddleName   *string `json:"middle_name" binding:"omitempty,max=50"`
	LastName     *string `json:"last_name" binding:"omitempty,max=50"`
	Contact      *string `json:"contact" binding:"omitempty,max=13"`
	DateOfBirth  *string `json:"date_of_birth"`
	AddressLine1 *string `json:"address_line_1" binding:"omitempty,max=200"`
	AddressLine2 *string `json:"address_line_2" binding:"omitempty,max=200"`
	State        *string `json:"state" binding:"omitempty,max=200"`
	City         *string `json:"city" binding:"omitempty,max=200"`
	Zip          *string `json:"zip" binding:"omitempty,max=20"`
	Password     *string `json:"password" binding:"omitempty,min=6"`
}

type UpdateUserRequest struct {
	UpdateProfileRequest
	IsActive *bool `json:"is_active"`
	IsStaff  *bool `json:"is_staff"`
	IsAdmin  *bool `json:"is_admin"`
}

// UserResponse 对外的用户视图，不含口令散列。
type UserResponse struct {
	ID           uint   `json:"id"`
	FirstName    string `json:"first_name"`
	MiddleName   string `json:"middle_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Contact      string `json:"contact"`
	DateOfBirth  string `json:"date_of_birth"`
	AddressLine1 string `json:"address_line_1"`
	AddressLine2 string `json:"address_line_2"`
	State        string `json:"state"`
	City         string `json:"city"`
	Zip          string `json:"zip"`
	IsAdmin      bool   `json:"is_admin"`
}

func NewUserResponse(user *model.User) UserResponse {
	resp := UserResponse{
		ID:           user.ID,
		FirstName:    user.FirstName,
		MiddleName:   user.MiddleName,
		LastName:     user.LastName,
		Email:        user.Email,
		Contact:      user.Contact,
		AddressLine1: user.AddressLine1,
		AddressLine2: user.AddressLine2,
		State:        user.State,
		City:         user.City,
		Zip:          user.Zip,
		IsAdmin:      user.IsAdmin,
	}
	if user.DateOfBirth != nil {
		resp.DateOfBirth = user.DateOfBirth.Format(util.DateFormat)
	}
	return resp
}

func (s *UserService) Get(id uint) (*UserResponse, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	resp := NewUserResponse(user)
	return &resp, nil
}

func (s *UserService) List(search string, p pagination.Params) ([]UserResponse, pagination.Meta, error) {
	users, total, err := s.UserRepo.List(search, p)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	resp := make([]UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, NewUserResponse(&users[i]))
	}
	return resp, pagination.NewMeta(p, total), nil
}

func (s *UserService) UpdateProfile(id uint, req UpdateProfileRequest) (*UserResponse, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if err := applyProfile(user, req); err != nil {
		return nil, err
	}
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}

	resp := NewUserResponse(user)
	return &resp, nil
}

// Update 管理员更新：除资料外还可调整角色标志。
func (s *UserService) Update(id uint, req UpdateUserRequest) (*UserResponse, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if err := applyProfile(user, req.UpdateProfileRequest); err != nil {
		return nil, err
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.IsStaff != nil {
		user.IsStaff = *req.IsStaff
	}
	if req.IsAdmin != nil {
		user.IsAdmin = *req.IsAdmin
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}

	resp := NewUserResponse(user)
	return &resp, nil
}

func (s *UserService) Delete(id uint) (*UserResponse, error) {
	user, err := s.UserRepo.Delete(id)
	if err != nil {
		return nil, err
	}
	resp := NewUserResponse(user)
	return &resp, nil
}

func applyProfile(user *model.User, req UpdateProfileRequest) error {
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.MiddleName != nil {
		user.MiddleName = *req.MiddleName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Contact != nil {
		user.Contact = *req.Contact
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse(util.DateFormat, *req.DateOfBirth)
		if err != nil {
			return util.ErrValidation
		}
		user.DateOfBirth = &dob
	}
	if req.AddressLine1 != nil {
		user.AddressLine1 = *req.AddressLine1
	}
	if req.AddressLine2 != nil {
		user.AddressLine2 = *req.AddressLine2
	}
	if req.State != nil {
		user.State = *req.State
	}
	if req.City != nil {
		user.City = *req.City
	}
	if req.Zip != nil {
		user.Zip = *req.Zip
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user.Password = string(hashed)
	}
	return nil
}
