package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestProfileUpdate_Apply(t *testing.T) {
	base := User{ID: 7, Name: "Old Name", Email: "old@example.com", Role: RoleUser, Address: "Old St 1"}

	tests := []struct {
		name   string
		update ProfileUpdate
		want   User
	}{
		{
			name:   "empty update changes nothing",
			update: ProfileUpdate{},
			want:   base,
		},
		{
			name:   "name only",
			update: ProfileUpdate{Name: strptr("New Name")},
			want:   User{ID: 7, Name: "New Name", Email: "old@example.com", Role: RoleUser, Address: "Old St 1"},
		},
		{
			name:   "explicit empty string overwrites",
			update: ProfileUpdate{Address: strptr("")},
			want:   User{ID: 7, Name: "Old Name", Email: "old@example.com", Role: RoleUser, Address: ""},
		},
		{
			name:   "several fields at once",
			update: ProfileUpdate{Name: strptr("N"), Email: strptr("n@example.com")},
			want:   User{ID: 7, Name: "N", Email: "n@example.com", Role: RoleUser, Address: "Old St 1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := base
			tt.update.Apply(&u)
			require.Equal(t, tt.want, u)
		})
	}
}
