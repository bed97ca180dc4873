package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Заголовок с подписью тела запроса и ответа
const HashHeader = "HashSHA256"

func ComputeHMACSHA256(data, key []byte) string {
	h := hmac.New(sha256.New, key)
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// VerifyHMACSHA256 сравнивает подпись за постоянное время
func VerifyHMACSHA256(data, key []byte, signature string) bool {
	expected, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	h := hmac.New(sha256.New, key)
	h.Write(data)
	return hmac.Equal(h.Sum(nil), expected)
}
