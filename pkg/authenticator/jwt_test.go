package authenticator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/timebank-lab/backend/config"
	"github.com/timebank-lab/backend/pkg/authenticator"
)

func TestJWT(t *testing.T) {
	engine := authenticator.NewTokenEngine(config.AuthConfigs{
		TokenSecret:     "secret",
		Issuer:          "timebank",
		TokenExpiration: time.Minute,
	})

	token, err := engine.Generate("clerk_abc")
	require.NoError(t, err)

	sub, err := engine.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "clerk_abc", sub)
}

func TestJWTExpiration(t *testing.T) {
	engine := authenticator.NewTokenEngine(config.AuthConfigs{
		TokenSecret:     "secret",
		TokenExpiration: time.Nanosecond,
	})

	token, err := engine.Generate("clerk_abc")
	require.NoError(t, err)

	time.Sleep(time.Millisecond)
	_, err = engine.Verify(token)
	require.Error(t, err)
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := authenticator.NewTokenEngine(config.AuthConfigs{
		TokenSecret:     "secret",
		TokenExpiration: time.Minute,
	}).Generate("clerk_abc")
	require.NoError(t, err)

	_, err = authenticator.NewTokenEngine(config.AuthConfigs{
		TokenSecret:     "other",
		TokenExpiration: time.Minute,
	}).Verify(token)
	require.Error(t, err)
}

func TestJWTEmptySubject(t *testing.T) {
	_, err := authenticator.NewTokenEngine(config.AuthConfigs{TokenSecret: "secret"}).Generate("")
	require.Error(t, err)
}
