package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/shiftbooks/backoffice/internal/apperrors"
	"github.com/shiftbooks/backoffice/internal/core/domain"
	"github.com/shiftbooks/backoffice/internal/core/ports"
	"github.com/shiftbooks/backoffice/internal/core/services"
	"github.com/shiftbooks/backoffice/internal/dto"
	"github.com/shiftbooks/backoffice/internal/utils"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockUserRepository
	mockRecorder *MockActivityRecorder
	service      ports.UserSvc
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.mockRecorder = new(MockActivityRecorder)
	suite.service = services.NewUserService(suite.mockRepo, suite.mockRecorder)
}

func (suite *UserServiceTestSuite) TestProvision_UpsertsAndReturnsUser() {
	ctx := context.Background()
	user := staffUser("staff-1")

	suite.mockRepo.On("EnsureUser", ctx, user.UID, user.Email).Return(nil)
	suite.mockRepo.On("FindUserByUID", ctx, user.UID).Return(&user, nil)

	got, err := suite.service.Provision(ctx, user.UID, user.Email)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), user.UID, got.UID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestProvision_BlocksInactiveUser() {
	ctx := context.Background()
	user := staffUser("staff-1")
	user.Status = domain.UserInactive

	suite.mockRepo.On("EnsureUser", ctx, user.UID, user.Email).Return(nil)
	suite.mockRepo.On("FindUserByUID", ctx, user.UID).Return(&user, nil)

	_, err := suite.service.Provision(ctx, user.UID, user.Email)

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestCreateEmployee_Success() {
	ctx := context.Background()
	admin := adminUser("admin-1")
	payRate := decimal.RequireFromString("11.50")
	req := dto.CreateEmployeeRequest{
		Email:    "new@example.com",
		Password: "supersecret",
		Role:     "staff",
		FullName: "New Person",
		PayRate:  &payRate,
	}

	suite.mockRepo.On("CreateUser", ctx, mock.AnythingOfType("domain.User"), mock.AnythingOfType("string")).Return(nil)
	suite.mockRecorder.On("Record", ctx, admin, domain.ActionCreateUser, "New user: new@example.com, Role: staff").Return()

	got, err := suite.service.CreateEmployee(ctx, admin, req)

	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), got.UID)
	assert.Equal(suite.T(), domain.RoleStaff, got.Role)
	assert.Equal(suite.T(), domain.UserActive, got.Status)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRecorder.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateEmployee_RejectsUnknownRole() {
	ctx := context.Background()
	req := dto.CreateEmployeeRequest{Email: "new@example.com", Password: "supersecret", Role: "owner"}

	_, err := suite.service.CreateEmployee(ctx, adminUser("admin-1"), req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateUser", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateEmployee_RejectsNegativePayRate() {
	ctx := context.Background()
	payRate := decimal.RequireFromString("-1")
	req := dto.CreateEmployeeRequest{Email: "new@example.com", Password: "supersecret", Role: "staff", PayRate: &payRate}

	_, err := suite.service.CreateEmployee(ctx, adminUser("admin-1"), req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
}

func (suite *UserServiceTestSuite) TestCreateEmployee_RequiresAdmin() {
	ctx := context.Background()
	req := dto.CreateEmployeeRequest{Email: "new@example.com", Password: "supersecret", Role: "staff"}

	_, err := suite.service.CreateEmployee(ctx, staffUser("staff-1"), req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestDisableUser_RejectsSelfDisable() {
	ctx := context.Background()
	admin := adminUser("admin-1")

	err := suite.service.DisableUser(ctx, admin, admin.UID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SetUserStatus", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestDisableUser_Success() {
	ctx := context.Background()
	admin := adminUser("admin-1")

	suite.mockRepo.On("SetUserStatus", ctx, "staff-1", domain.UserInactive).Return(nil)
	suite.mockRecorder.On("Record", ctx, admin, domain.ActionDisableUser, "Disabled user with UID: staff-1").Return()

	err := suite.service.DisableUser(ctx, admin, "staff-1")

	assert.NoError(suite.T(), err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestVerifyCredentials_Success() {
	ctx := context.Background()
	user := staffUser("staff-1")
	hash, hashErr := utils.HashPassword("correct horse")
	assert.NoError(suite.T(), hashErr)

	suite.mockRepo.On("CredentialHash", ctx, user.Email).Return(user.UID, hash, nil)
	suite.mockRepo.On("FindUserByUID", ctx, user.UID).Return(&user, nil)

	got, err := suite.service.VerifyCredentials(ctx, user.Email, "correct horse")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), user.UID, got.UID)
}

func (suite *UserServiceTestSuite) TestVerifyCredentials_WrongPasswordIsGeneric() {
	ctx := context.Background()
	user := staffUser("staff-1")
	hash, hashErr := utils.HashPassword("correct horse")
	assert.NoError(suite.T(), hashErr)

	suite.mockRepo.On("CredentialHash", ctx, user.Email).Return(user.UID, hash, nil)

	_, err := suite.service.VerifyCredentials(ctx, user.Email, "battery staple")

	assert.ErrorIs(suite.T(), err, apperrors.ErrUnauthorized)
	assert.EqualError(suite.T(), err, "invalid email or password: unauthorized")
}

func (suite *UserServiceTestSuite) TestVerifyCredentials_UnknownEmailIsGeneric() {
	ctx := context.Background()

	suite.mockRepo.On("CredentialHash", ctx, "nobody@example.com").Return("", "", apperrors.ErrNotFound)

	_, err := suite.service.VerifyCredentials(ctx, "nobody@example.com", "whatever")

	assert.ErrorIs(suite.T(), err, apperrors.ErrUnauthorized)
	assert.NotErrorIs(suite.T(), err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestVerifyCredentials_InactiveUserForbidden() {
	ctx := context.Background()
	user := staffUser("staff-1")
	user.Status = domain.UserInactive
	hash, hashErr := utils.HashPassword("correct horse")
	assert.NoError(suite.T(), hashErr)

	suite.mockRepo.On("CredentialHash", ctx, user.Email).Return(user.UID, hash, nil)
	suite.mockRepo.On("FindUserByUID", ctx, user.UID).Return(&user, nil)

	_, err := suite.service.VerifyCredentials(ctx, user.Email, "correct horse")

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
