package utils

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
)

// SessionKeys 从应用密钥派生 cookie 会话的签名密钥（64 字节）和加密密钥（32 字节，AES-256），
// 令牌在浏览器端只以密文形式存在
func SessionKeys(secret string) (hashKey, blockKey []byte) {
	r := hkdf.New(sha256.New, []byte(secret), nil, []byte("sinema session cookie"))
	hashKey = make([]byte, 64)
	blockKey = make([]byte, 32)
	if _, err := io.ReadFull(r, hashKey); err != nil {
		panic(err)
	}
	if _, err := io.ReadFull(r, blockKey); err != nil {
		panic(err)
	}
	return hashKey, blockKey
}
