package accesslog

import (
	"time"
)

// Certificate is one decoded certificate from a client's peer chain.
//
// Certificate chains are produced by third parties, so decoding is
// deliberately tolerant: any field of a certificate object that fails to
// parse decodes to nil instead of failing the record, and the rest of the
// chain is unaffected. This is the one place in the package where a
// field-level failure does not abort the whole message.
type Certificate struct {
	// SubjectDN is the certificate's subject distinguished name.
	SubjectDN *string
	// IssuerDN is the certificate's issuer distinguished name.
	IssuerDN *string
	// Type is the certificate type (e.g. "X.509").
	Type *string
	// NotBefore is the start of the certificate's validity window.
	NotBefore *time.Time
	// NotAfter is the end of the certificate's validity window.
	NotAfter *time.Time
	// SerialNumber is the certificate's serial number.
	SerialNumber *string
	// SignatureAlgorithm is the algorithm used to sign the certificate.
	SignatureAlgorithm *string
}

// decodeCertificateChain decodes the peer certificate chain field as an
// ordered list, or returns nil if it is absent. The chain itself must be
// an array of objects; the fields inside each certificate are decoded
// tolerantly.
func decodeCertificateChain(r *Record) ([]Certificate, error) {
	objs, err := r.ObjectList(FieldPeerCertificateChain)
	if err != nil {
		return nil, err
	}
	if objs == nil {
		return nil, nil
	}

	chain := make([]Certificate, 0, len(objs))
	for _, obj := range objs {
		chain = append(chain, decodeCertificate(obj))
	}
	return chain, nil
}

// decodeCertificate decodes one certificate object. Unparseable fields
// decode to nil.
func decodeCertificate(r *Record) Certificate {
	var c Certificate
	c.SubjectDN, _ = r.String(FieldCertSubjectDN)
	c.IssuerDN, _ = r.String(FieldCertIssuerDN)
	c.Type, _ = r.String(FieldCertType)
	c.NotBefore, _ = r.Date(FieldCertNotBefore)
	c.NotAfter, _ = r.Date(FieldCertNotAfter)
	c.SerialNumber, _ = r.String(FieldCertSerialNumber)
	c.SignatureAlgorithm, _ = r.String(FieldCertSignatureAlgorithm)
	return c
}
