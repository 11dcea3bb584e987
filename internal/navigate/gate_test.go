package navigate

import (
	"testing"

	"github.com/MKhiriev/go-chem-crm/models"
	"github.com/stretchr/testify/assert"
)

type staticSessions struct {
	session models.Session
}

func (s staticSessions) Current() models.Session { return s.session }

func TestGate_Route(t *testing.T) {
	tests := []struct {
		name    string
		session models.Session
		want    Route
	}{
		{
			name:    "initializing shows splash",
			session: models.Session{Status: models.StatusInitializing},
			want:    RouteSplash,
		},
		{
			name:    "signed out shows auth",
			session: models.Session{Status: models.StatusSignedOut},
			want:    RouteAuth,
		},
		{
			name: "signed in shows main",
			session: models.Session{
				Status:  models.StatusSignedIn,
				Account: &models.Account{ID: "uid-1", EmailVerified: true},
			},
			want: RouteMain,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := NewGate(staticSessions{session: tt.session})
			assert.Equal(t, tt.want, gate.Route())
		})
	}
}

func TestRoute_String(t *testing.T) {
	assert.Equal(t, "splash", RouteSplash.String())
	assert.Equal(t, "auth", RouteAuth.String())
	assert.Equal(t, "main", RouteMain.String())
	assert.Equal(t, "unknown", Route(99).String())
}
