package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestURLSigner(t *testing.T) {
	t.Run("success sign and verify roundtrip", func(t *testing.T) {
		signer := NewURLSigner("secret", DefaultSignedURLTTL)

		token, err := signer.Sign("company/employee/doc.pdf", "company-1", "contract.pdf")
		assert.NoError(t, err)

		path, companyID, fileName, err := signer.Verify(token)
		assert.NoError(t, err)
		assert.Equal(t, "company/employee/doc.pdf", path)
		assert.Equal(t, "company-1", companyID)
		assert.Equal(t, "contract.pdf", fileName)
	})

	t.Run("negative expired token", func(t *testing.T) {
		// Token timestamps have second resolution, so sleep past a full
		// second to be sure the expiry has passed.
		signer := NewURLSigner("secret", time.Millisecond)

		token, err := signer.Sign("company/employee/doc.pdf", "company-1", "contract.pdf")
		assert.NoError(t, err)

		time.Sleep(1100 * time.Millisecond)

		_, _, _, err = signer.Verify(token)
		assert.Error(t, err)
	})

	t.Run("negative token signed with a different secret", func(t *testing.T) {
		signer := NewURLSigner("secret", DefaultSignedURLTTL)
		other := NewURLSigner("other-secret", DefaultSignedURLTTL)

		token, err := signer.Sign("company/employee/doc.pdf", "company-1", "contract.pdf")
		assert.NoError(t, err)

		_, _, _, err = other.Verify(token)
		assert.Error(t, err)
	})
}
