package sasl

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"hash"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/pbkdf2"
)

// scramServerSim is a minimal RFC 5802 server used only to exercise Scram's
// client side end to end; it is not part of the package's public surface.
type scramServerSim struct {
	newHash func() hash.Hash
	passwd  string

	salt            []byte
	iterations      int
	clientFirstBare string
	serverFirst     string
	combinedNonce   string
}

func newScramServerSim(t *testing.T, variant, passwd string) *scramServerSim {
	t.Helper()
	var newHash func() hash.Hash
	switch variant {
	case "SCRAM-SHA-1":
		newHash = sha1.New
	case "SCRAM-SHA-256":
		newHash = sha256.New
	case "SCRAM-SHA-512":
		newHash = sha512.New
	default:
		t.Fatalf("unknown variant %q", variant)
	}
	salt := make([]byte, 16)
	_, err := rand.Read(salt)
	require.NoError(t, err)
	return &scramServerSim{newHash: newHash, passwd: passwd, salt: salt, iterations: 4096}
}

func (s *scramServerSim) handleClientFirst(t *testing.T, clientFirst []byte) []byte {
	t.Helper()
	msg := string(clientFirst)
	require.True(t, strings.HasPrefix(msg, "n,,"))
	s.clientFirstBare = msg[3:]

	var clientNonce string
	for _, part := range strings.Split(s.clientFirstBare, ",") {
		if strings.HasPrefix(part, "r=") {
			clientNonce = part[2:]
		}
	}
	require.NotEmpty(t, clientNonce)

	serverNonce := make([]byte, 18)
	_, err := rand.Read(serverNonce)
	require.NoError(t, err)
	s.combinedNonce = clientNonce + base64.RawStdEncoding.EncodeToString(serverNonce)

	s.serverFirst = "r=" + s.combinedNonce + ",s=" + base64.StdEncoding.EncodeToString(s.salt) + ",i=4096"
	return []byte(s.serverFirst)
}

func (s *scramServerSim) handleClientFinal(t *testing.T, clientFinal []byte) []byte {
	t.Helper()
	msg := string(clientFinal)
	var clientFinalNoProof, proofB64 string
	parts := strings.Split(msg, ",")
	for i, part := range parts {
		if strings.HasPrefix(part, "p=") {
			proofB64 = part[2:]
			clientFinalNoProof = strings.Join(parts[:i], ",")
		}
	}
	require.NotEmpty(t, proofB64)

	saltedPassword := pbkdf2.Key([]byte(s.passwd), s.salt, s.iterations, s.newHash().Size(), s.newHash)
	clientKey := s.hmac(saltedPassword, []byte("Client Key"))
	storedKey := s.hash(clientKey)
	authMessage := s.clientFirstBare + "," + s.serverFirst + "," + clientFinalNoProof
	clientSignature := s.hmac(storedKey, []byte(authMessage))

	proof, err := base64.StdEncoding.DecodeString(proofB64)
	require.NoError(t, err)
	clientKeyCheck := xorBytes(proof, clientSignature)
	require.True(t, hmac.Equal(s.hash(clientKeyCheck), storedKey), "client proof did not verify")

	serverKey := s.hmac(saltedPassword, []byte("Server Key"))
	serverSignature := s.hmac(serverKey, []byte(authMessage))
	return []byte("v=" + base64.StdEncoding.EncodeToString(serverSignature))
}

func (s *scramServerSim) hmac(key, data []byte) []byte {
	h := hmac.New(s.newHash, key)
	h.Write(data)
	return h.Sum(nil)
}

func (s *scramServerSim) hash(data []byte) []byte {
	h := s.newHash()
	h.Write(data)
	return h.Sum(nil)
}
