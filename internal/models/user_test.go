package models_test

import (
	"github.com/pocketledger/backend/internal/models"
)

func (suite *TestSuiteStandard) TestUserPassword() {
	user := suite.createTestUser(models.User{})

	suite.Assert().True(user.CheckPassword("correct-horse-9"))
	suite.Assert().False(user.CheckPassword("wrong"))
	suite.Assert().NotContains(user.PasswordHash, "correct-horse-9")
}

func (suite *TestSuiteStandard) TestUserEmailNormalized() {
	user := models.User{
		Username: "jane",
		Email:    "  Jane@Example.COM ",
	}
	suite.Require().Nil(user.SetPassword("correct-horse-9"))
	suite.Require().Nil(models.DB.Create(&user).Error)

	suite.Assert().Equal("jane@example.com", user.Email)
}

func (suite *TestSuiteStandard) TestUserUsernameNotUnique() {
	suite.createTestUser(models.User{Username: "jane", Email: "jane@example.com"})

	user := models.User{Username: "jane", Email: "other@example.com"}
	suite.Require().Nil(user.SetPassword("correct-horse-9"))

	err := models.DB.Create(&user).Error
	suite.Assert().ErrorIs(err, models.ErrUsernameNotUnique)
}

func (suite *TestSuiteStandard) TestUserEmailNotUnique() {
	suite.createTestUser(models.User{Username: "jane", Email: "jane@example.com"})

	user := models.User{Username: "john", Email: "jane@example.com"}
	suite.Require().Nil(user.SetPassword("correct-horse-9"))

	err := models.DB.Create(&user).Error
	suite.Assert().ErrorIs(err, models.ErrEmailNotUnique)
}

func (suite *TestSuiteStandard) TestSessionDefaults() {
	user := suite.createTestUser(models.User{})

	session := models.Session{UserID: user.ID}
	suite.Require().Nil(models.DB.Create(&session).Error)

	suite.Assert().NotEmpty(session.Token)
	suite.Assert().False(session.ExpiresAt.IsZero())
	suite.Assert().False(session.Expired())
}
