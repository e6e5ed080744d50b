package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateOTP generates a numeric OTP of the given length
func GenerateOTP(length int) string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	otp := ""
	for i := 0; i < length; i++ {
		otp += fmt.Sprintf("%d", rng.Intn(10))
	}
	return otp
}
