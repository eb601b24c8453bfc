package service

import (
	"errors"
	"testing"

	"github.com/fanxi-showcase/internal/config"
	"github.com/fanxi-showcase/internal/constants"
)

func TestCaptchaDisabledPassesThrough(t *testing.T) {
	svc := NewCaptchaService(config.CaptchaConfig{Provider: "none"})
	if svc.Enabled() {
		t.Fatalf("captcha should be disabled")
	}
	if err := svc.Verify(constants.CaptchaSceneAdminLogin, CaptchaVerifyPayload{}); err != nil {
		t.Fatalf("disabled captcha must pass, got %v", err)
	}
	if _, err := svc.GenerateImageChallenge(); !errors.Is(err, ErrCaptchaConfigInvalid) {
		t.Fatalf("expected ErrCaptchaConfigInvalid, got %v", err)
	}
	if setting := svc.PublicSetting(); setting.Provider != constants.CaptchaProviderNone {
		t.Fatalf("unexpected public setting: %+v", setting)
	}
}

func TestCaptchaImageChallengeVerify(t *testing.T) {
	svc := NewCaptchaService(config.CaptchaConfig{Provider: "image"})
	challenge, err := svc.GenerateImageChallenge()
	if err != nil {
		t.Fatalf("generate challenge failed: %v", err)
	}
	if challenge.CaptchaID == "" || challenge.ImageBase64 == "" {
		t.Fatalf("empty challenge: %+v", challenge)
	}

	if err := svc.Verify(constants.CaptchaSceneAdminLogin, CaptchaVerifyPayload{}); !errors.Is(err, ErrCaptchaRequired) {
		t.Fatalf("expected ErrCaptchaRequired, got %v", err)
	}
	if err := svc.Verify(constants.CaptchaSceneAdminLogin, CaptchaVerifyPayload{CaptchaID: challenge.CaptchaID, CaptchaCode: "wrong"}); !errors.Is(err, ErrCaptchaInvalid) {
		t.Fatalf("expected ErrCaptchaInvalid, got %v", err)
	}

	second, err := svc.GenerateImageChallenge()
	if err != nil {
		t.Fatalf("generate second challenge failed: %v", err)
	}
	answer := svc.imageStore().Get(second.CaptchaID, false)
	if err := svc.Verify(constants.CaptchaSceneAdminLogin, CaptchaVerifyPayload{CaptchaID: second.CaptchaID, CaptchaCode: answer}); err != nil {
		t.Fatalf("correct answer rejected: %v", err)
	}
	if err := svc.Verify(constants.CaptchaSceneAdminLogin, CaptchaVerifyPayload{CaptchaID: second.CaptchaID, CaptchaCode: answer}); !errors.Is(err, ErrCaptchaInvalid) {
		t.Fatalf("captcha must be single use, got %v", err)
	}
}
