package data

import (
	"testing"

	"github.com/SamruddhiShinde-hub/monivue/internal/validator"
)

func TestValidateUser(t *testing.T) {
	validUser := func(mutate func(*User)) *User {
		user := &User{
			Name:  "Samruddhi Shinde",
			Email: "samruddhi@example.com",
		}
		err := user.Password.Set("pa55word123")
		if err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		if mutate != nil {
			mutate(user)
		}
		return user
	}
	type args struct {
		user *User
	}
	tests := []struct {
		name string
		args args
		want bool
	}{
		{
			name: "Valid User",
			args: args{user: validUser(nil)},
			want: true,
		},
		{
			name: "Missing Name",
			args: args{user: validUser(func(u *User) { u.Name = "" })},
			want: false,
		},
		{
			name: "Invalid Email",
			args: args{user: validUser(func(u *User) { u.Email = "not-an-email" })},
			want: false,
		},
		{
			name: "Short Password",
			args: args{user: validUser(func(u *User) {
				short := "short"
				u.Password.plaintext = &short
			})},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validator.New()
			ValidateUser(v, tt.args.user)
			if got := v.Valid(); got != tt.want {
				t.Errorf("ValidateUser() valid = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPasswordMatches(t *testing.T) {
	var p password
	err := p.Set("pa55word123")
	if err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	type args struct {
		plaintext string
	}
	tests := []struct {
		name string
		args args
		want bool
	}{
		{
			name: "Correct Password",
			args: args{plaintext: "pa55word123"},
			want: true,
		},
		{
			name: "Wrong Password",
			args: args{plaintext: "pa55word124"},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Matches(tt.args.plaintext)
			if err != nil {
				t.Fatalf("Matches() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("password.Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}
