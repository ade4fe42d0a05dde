package utils_test

import (
	"testing"

	"popin/models"
	"popin/utils"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := utils.GenerateToken("alice", 42, models.RoleAttendee)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	id, role, err := utils.VerifyToken(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if id != 42 {
		t.Fatalf("want userId 42, got %d", id)
	}
	if role != models.RoleAttendee {
		t.Fatalf("want ATTENDEE, got %s", role)
	}
}

func TestVerifyGarbageToken(t *testing.T) {
	if _, _, err := utils.VerifyToken("not.a.token"); err == nil {
		t.Fatal("garbage token must not verify")
	}
}

func TestVerifyTamperedToken(t *testing.T) {
	token, err := utils.GenerateToken("alice", 42, models.RoleAttendee)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	tampered := token[:len(token)-2] + "xx"
	if _, _, err := utils.VerifyToken(tampered); err == nil {
		t.Fatal("tampered token must not verify")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !utils.CheckPasswordHash("s3cret", hash) {
		t.Fatal("correct password rejected")
	}
	if utils.CheckPasswordHash("wrong", hash) {
		t.Fatal("wrong password accepted")
	}
}
