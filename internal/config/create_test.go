package config_test

import (
	"errors"
	"os"
	"testing"

	"github.com/matryer/is"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/tauraamui/gifreel/internal/config"
	"github.com/tauraamui/gifreel/pkg/configdef"
)

type CreateConfigTestSuite struct {
	suite.Suite
	is       *is.I
	creator  configdef.Creator
	fs       afero.Fs
	resetFS  func()
	resetDir func()
}

func (suite *CreateConfigTestSuite) SetupSuite() {
	require.NoError(suite.T(), os.Unsetenv("GIFREEL_CONFIG"))
	suite.is = is.New(suite.T())
	suite.fs = afero.NewMemMapFs()
	suite.creator = config.DefaultCreator()

	// use in memory FS in implementation for tests
	suite.resetFS = config.OverloadFS(suite.fs)
	suite.resetDir = config.OverloadUserConfigDir(func() (string, error) {
		return "/home/tester/.config", nil
	})
}

func (suite *CreateConfigTestSuite) TearDownSuite() {
	suite.resetDir()
	suite.resetFS()
}

func (suite *CreateConfigTestSuite) TearDownTest() {
	suite.is.NoErr(suite.fs.RemoveAll("/"))
}

func (suite *CreateConfigTestSuite) TestConfigCreate() {
	path, err := suite.creator.Create()
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "/home/tester/.config/tacusci/gifreel/config.json", path)

	loadedConfig, err := config.DefaultResolver().Resolve()
	assert.NoError(suite.T(), err)
	assert.EqualValues(suite.T(), configdef.Values{
		Scale:     1,
		LabelSize: 12,
		LogLevel:  "warn",
	}, loadedConfig)
}

func (suite *CreateConfigTestSuite) TestConfigCreateFailsDueToAlreadyExisting() {
	_, err := suite.creator.Create()
	suite.is.NoErr(err)
	_, err = suite.creator.Create()
	suite.is.Equal(err.Error(), "config file already exists")
	suite.is.True(errors.Is(err, configdef.ErrConfigAlreadyExists))
}

func (suite *CreateConfigTestSuite) TestConfigCreateFailsWithoutConfigDir() {
	defer config.OverloadUserConfigDir(func() (string, error) {
		return "", errors.New("$HOME is not defined")
	})()

	_, err := suite.creator.Create()
	require.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "$HOME is not defined")
}

func TestCreateConfigTestSuite(t *testing.T) {
	suite.Run(t, &CreateConfigTestSuite{})
}
