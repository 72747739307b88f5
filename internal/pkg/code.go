package pkg

import (
	cryptoRand "crypto/rand"
	"math/big"
	"strings"
)

const digits = "0123456789"
const lowerAlnum = "abcdefghijklmnopqrstuvwxyz0123456789"

func randFrom(alphabet string, n int) (string, error) {
	var b strings.Builder
	max := big.NewInt(int64(len(alphabet)))
	for i := 0; i < n; i++ {
		x, err := cryptoRand.Int(cryptoRand.Reader, max)
		if err != nil {
			return "", err
		}
		b.WriteByte(alphabet[x.Int64()])
	}
	return b.String(), nil
}

// RandDigits 验证码用的随机数字串
func RandDigits(n int) (string, error) {
	return randFrom(digits, n)
}

// RandSuffix 上传文件名用的随机后缀
func RandSuffix(n int) (string, error) {
	return randFrom(lowerAlnum, n)
}
