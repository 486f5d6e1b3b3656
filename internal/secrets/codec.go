package secrets

import "encoding/base64"

// Encode obfuscates plaintext by XOR-ing its bytes against the repeating
// key and base64-framing the result. This keeps the credential out of
// plain-text state dumps; it is not encryption and makes no claim to be.
func Encode(plaintext, key string) string {
	if key == "" {
		return base64.StdEncoding.EncodeToString([]byte(plaintext))
	}

	src := []byte(plaintext)
	k := []byte(key)
	out := make([]byte, len(src))
	for i, b := range src {
		out[i] = b ^ k[i%len(k)]
	}
	return base64.StdEncoding.EncodeToString(out)
}

// Decode reverses Encode. Malformed input yields the empty string, never
// an error: a garbled stored credential behaves like a missing one.
func Decode(encoded, key string) string {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return ""
	}
	if key == "" {
		return string(data)
	}

	k := []byte(key)
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ k[i%len(k)]
	}
	return string(out)
}
