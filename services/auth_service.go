package services

import (
	"errors"
	"strings"
	"time"

	"github.com/Avi1top/carvango-backend-sub000/entity"
	"github.com/Avi1top/carvango-backend-sub000/pkg/verify"
	"github.com/Avi1top/carvango-backend-sub000/repository"
	"github.com/Avi1top/carvango-backend-sub000/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthService จัดการ business logic ของการ login/register
type AuthService struct {
	custRepo  *repository.CustomerRepository
	codes     *verify.CodeStore
	mailer    Mailer
	jwtSecret string
	jwtTTL    time.Duration
	log       *zap.Logger
}

func NewAuthService(repo *repository.CustomerRepository, codes *verify.CodeStore, mailer Mailer, secret string, ttl time.Duration, log *zap.Logger) *AuthService {
	return &AuthService{
		custRepo:  repo,
		codes:     codes,
		mailer:    mailer,
		jwtSecret: secret,
		jwtTTL:    ttl,
		log:       log,
	}
}

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrBadVerifyCode      = errors.New("invalid or expired verification code")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// RequestCode ออก one-time code ให้ email แล้วส่งผ่าน mailer
func (s *AuthService) RequestCode(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return ErrCustomerEmailRequired
	}

	count, err := s.custRepo.CountByEmail(email)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrEmailTaken
	}

	code, err := s.codes.Issue(email)
	if err != nil {
		return err
	}
	return s.mailer.SendVerificationCode(email, code)
}

type RegisterReq struct {
	Email       string `json:"email" binding:"required,email"`
	Code        string `json:"code" binding:"required"`
	Password    string `json:"password" binding:"required,min=6"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Address     string `json:"address"`
	City        string `json:"city"`
	PostalCode  string `json:"postalCode"`
	PhoneNumber string `json:"phoneNumber"`
}

// Register สร้างลูกค้าใหม่ ต้องผ่าน code ที่ขอไว้ก่อน
func (s *AuthService) Register(req *RegisterReq) (*entity.Customer, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !s.codes.Verify(email, req.Code) {
		return nil, ErrBadVerifyCode
	}

	// ตรวจซ้ำ email อีกรอบ เผื่อสมัครแข่งกัน
	count, err := s.custRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	cust := &entity.Customer{
		Email:       email,
		Password:    string(hashed),
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		Address:     strings.TrimSpace(req.Address),
		City:        strings.TrimSpace(req.City),
		PostalCode:  strings.TrimSpace(req.PostalCode),
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
		Role:        "customer",
	}

	if err := s.custRepo.Create(cust); err != nil {
		return nil, err
	}
	s.log.Info("customer registered", zap.String("email", email))
	return cust, nil
}

// Login ตรวจสอบลูกค้า + สร้าง JWT
func (s *AuthService) Login(email, password string) (string, *entity.Customer, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	cust, err := s.custRepo.FindByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	// เทียบรหัสผ่าน
	if err := bcrypt.CompareHashAndPassword([]byte(cust.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	// ออก token
	token, err := utils.GenerateToken(cust.ID, cust.Email, cust.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}

	return token, cust, nil
}

func (s *AuthService) GetProfile(customerID uint) (*entity.Customer, error) {
	return s.custRepo.FindByID(customerID)
}

type UpdateProfileReq struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	PostalCode  *string `json:"postalCode"`
	PhoneNumber *string `json:"phoneNumber"`
}

// UpdateProfile แก้ได้เฉพาะข้อมูลติดต่อ — email/password/role ไม่อยู่ใน DTO
// เลยหลุดไปถึง DB ไม่ได้ไม่ว่า client ส่ง key อะไรมา
func (s *AuthService) UpdateProfile(customerID uint, req *UpdateProfileReq) (*entity.Customer, error) {
	updates := map[string]any{}
	if req.FirstName != nil {
		updates["first_name"] = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		updates["last_name"] = strings.TrimSpace(*req.LastName)
	}
	if req.Address != nil {
		updates["address"] = strings.TrimSpace(*req.Address)
	}
	if req.City != nil {
		updates["city"] = strings.TrimSpace(*req.City)
	}
	if req.PostalCode != nil {
		updates["postal_code"] = strings.TrimSpace(*req.PostalCode)
	}
	if req.PhoneNumber != nil {
		updates["phone_number"] = strings.TrimSpace(*req.PhoneNumber)
	}
	if len(updates) > 0 {
		if err := s.custRepo.Update(customerID, updates); err != nil {
			return nil, err
		}
	}
	return s.custRepo.FindByID(customerID)
}
