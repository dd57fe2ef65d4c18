package koanfp_test

import (
	"testing"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	metaobject "github.com/montanonic/javascript-allonge-six"
	"github.com/montanonic/javascript-allonge-six/config"
	koanfp "github.com/montanonic/javascript-allonge-six/config/koanf"
	"github.com/stretchr/testify/suite"
)

type ProviderTestSuite struct {
	suite.Suite
	provider config.Provider
}

func (suite *ProviderTestSuite) SetupTest() {
	k := koanf.New(".")
	err := k.Load(confmap.Provider(map[string]any{
		"composition": map[string]any{
			"verbosity": 1,
			"forwardsets": map[string][]string{
				"persisted": {"save", "load"},
			},
		},
	}, "."), nil)
	suite.Require().Nil(err)
	suite.provider = koanfp.Use(k)
}

func (suite *ProviderTestSuite) TestLoad() {
	suite.Run("Options", func() {
		options, err := config.Load(suite.provider, "composition")
		suite.Nil(err)
		suite.Equal(1, options.Verbosity)
		names, err := options.ForwardSet("persisted")
		suite.Nil(err)
		suite.Equal([]string{"save", "load"}, names)
	})

	suite.Run("UnknownForwardSet", func() {
		options, err := config.Load(suite.provider, "composition")
		suite.Nil(err)
		_, err = options.ForwardSet("ephemeral")
		suite.NotNil(err)
	})

	suite.Run("NilKoanfPanics", func() {
		defer func() {
			suite.Equal("k cannot be nil", recover())
		}()
		koanfp.Use(nil)
	})
}

// TestConfiguredDelegation drives a forward-proxy attachment
// from configuration: the forwarded name set comes from the
// loaded options instead of the source's full method table.
func (suite *ProviderTestSuite) TestConfiguredDelegation() {
	options, err := config.Load(suite.provider, "composition")
	suite.Nil(err)
	names, err := options.ForwardSet("persisted")
	suite.Nil(err)

	s := metaobject.NewBehaviorSource()
	for _, name := range []string{"save", "load", "purge"} {
		method := name
		s.AddMethod(name, func(recv *metaobject.Receiver, args ...any) (any, error) {
			return method, nil
		})
	}
	r, err := metaobject.Delegate(metaobject.NewReceiver(), s, names...)
	suite.Nil(err)

	result, err := r.Call("save")
	suite.Nil(err)
	suite.Equal("save", result)
	_, err = r.Call("purge")
	var notFound *metaobject.MethodNotFoundError
	suite.ErrorAs(err, &notFound)
}

func TestProviderTestSuite(t *testing.T) {
	suite.Run(t, new(ProviderTestSuite))
}
