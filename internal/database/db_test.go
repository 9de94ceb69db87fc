package database

import "testing"

func TestDSN(t *testing.T) {
	tests := []struct {
		name string
		user string
		pass string
		want string
	}{
		{
			name: "with password",
			user: "app",
			pass: "pw",
			want: "app:pw@tcp(db:3306)/musicbox?charset=utf8mb4&parseTime=true&loc=UTC",
		},
		{
			name: "empty password omits the colon",
			user: "root",
			pass: "",
			want: "root@tcp(db:3306)/musicbox?charset=utf8mb4&parseTime=true&loc=UTC",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dsn(tt.user, tt.pass, "db", "3306", "musicbox"); got != tt.want {
				t.Errorf("dsn() = %q, want %q", got, tt.want)
			}
		})
	}
}
