package secrets

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// Service groups this app's secrets in the OS keychain.
	KeyringService = "jobsweep"
)

// GetIMAPPassword resolves the IMAP password: OS keyring first, then the
// JOBSWEEP_IMAP_PASSWORD environment variable.
func GetIMAPPassword(keyringAccount string) (string, error) {
	if strings.TrimSpace(keyringAccount) != "" {
		pw, err := keyring.Get(KeyringService, keyringAccount)
		if err == nil && strings.TrimSpace(pw) != "" {
			return pw, nil
		}
	}
	if pw := strings.TrimSpace(os.Getenv("JOBSWEEP_IMAP_PASSWORD")); pw != "" {
		return pw, nil
	}
	return "", errors.New("IMAP password not found (set it in the keychain or via JOBSWEEP_IMAP_PASSWORD)")
}

func SetIMAPPassword(keyringAccount string, password string) error {
	if strings.TrimSpace(keyringAccount) == "" {
		return errors.New("keyring account name is empty")
	}
	if strings.TrimSpace(password) == "" {
		return errors.New("password is empty")
	}
	return keyring.Set(KeyringService, keyringAccount, password)
}

func DeleteIMAPPassword(keyringAccount string) error {
	if strings.TrimSpace(keyringAccount) == "" {
		return errors.New("keyring account name is empty")
	}
	return keyring.Delete(KeyringService, keyringAccount)
}

// IMAPKeyringAccount is the keychain account name for a mailbox identity.
func IMAPKeyringAccount(username, host string) string {
	return fmt.Sprintf("jobsweep:imap:%s@%s", username, host)
}
