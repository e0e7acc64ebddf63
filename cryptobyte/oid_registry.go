package cryptobyte

// Well-known OIDs used by SM2/SM3 certificates and signature algorithm
// identifiers, ported from the reference's oid.rs registry. Declared as
// functions rather than package vars since ObjectIdentifier has no usable
// zero-initialized literal form (the DER body must be computed).

func mustOID(parts ...uint32) ObjectIdentifier {
	oid, err := OIDFromInts(parts...)
	if err != nil {
		panic(err)
	}
	return oid
}

// OIDSM2ECC identifies the SM2 elliptic curve (1.2.156.10197.1.301).
func OIDSM2ECC() ObjectIdentifier { return mustOID(1, 2, 156, 10197, 1, 301) }

// OIDSignatureSM2WithSM3 identifies the SM2-with-SM3 signature algorithm
// (1.2.156.10197.1.501).
func OIDSignatureSM2WithSM3() ObjectIdentifier { return mustOID(1, 2, 156, 10197, 1, 501) }

// OIDSM3 identifies the SM3 hash algorithm (1.2.156.10197.1.401).
func OIDSM3() ObjectIdentifier { return mustOID(1, 2, 156, 10197, 1, 401) }
