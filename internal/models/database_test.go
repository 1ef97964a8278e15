package models_test

import (
	"github.com/finwise/backend/internal/models"
)

func (suite *TestSuiteStandard) TestKeyValueMigrated() {
	suite.Assert().True(suite.db.Migrator().HasTable(&models.KeyValue{}))
}

func (suite *TestSuiteStandard) TestKeyValueRoundTrip() {
	err := suite.db.Save(&models.KeyValue{Key: "transactions", Value: "[]"}).Error
	suite.Require().Nil(err)

	var kv models.KeyValue
	err = suite.db.First(&kv, &models.KeyValue{Key: "transactions"}).Error
	suite.Require().Nil(err)
	suite.Assert().Equal("[]", kv.Value)
	suite.Assert().False(kv.UpdatedAt.IsZero())
}

func (suite *TestSuiteStandard) TestClosedDatabaseGeneralError() {
	suite.CloseDB()

	var kv models.KeyValue
	err := suite.db.First(&kv, &models.KeyValue{Key: "transactions"}).Error
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
