// Copyright (c) 2026 The x509verify Authors. All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain_test

import (
	"crypto/x509"
	"encoding/pem"
)

// The fixtures below form one real, cryptographically valid hierarchy:
//
//	rootPEM (self-signed CA)
//	  -> leafPEM           (CN=www.example.com, direct child of root)
//	  -> leafExpiredPEM    (same key/SAN as leafPEM, notAfter in 2020)
//	  -> intermediatePEM   (CA, pathlen:0, child of root)
//	       -> leafViaIntermediatePEM (CN=api.example.com, child of intermediate)
const (
	rootPEM = `-----BEGIN CERTIFICATE-----
MIIBkzCCATmgAwIBAgIURnAA9xh5F8ApFhzqx8Zrd+3oxvYwCgYIKoZIzj0EAwIw
FzEVMBMGA1UEAwwMVGVzdCBSb290IENBMB4XDTI2MDgwMzA0MTgwOVoXDTM2MDcz
MTA0MTgwOVowFzEVMBMGA1UEAwwMVGVzdCBSb290IENBMFkwEwYHKoZIzj0CAQYI
KoZIzj0DAQcDQgAExhUECYgkXUcJLhTMS1ql68Gi0ahWUbxZWskFq3K5yDOjWcco
MTST1LSmC5dubez2N7n5S8iYidxfogGMPKXXvaNjMGEwHQYDVR0OBBYEFKRw7wDp
tIZsU+QjwJVHwhDzmzr7MB8GA1UdIwQYMBaAFKRw7wDptIZsU+QjwJVHwhDzmzr7
MA8GA1UdEwEB/wQFMAMBAf8wDgYDVR0PAQH/BAQDAgEGMAoGCCqGSM49BAMCA0gA
MEUCIQCt8xjXklLGI1pQKJ8HBlqVhRdzc+SvxOO7znLm5e3B+QIgcMbgSzuKRaji
UTZTo7BdkQ9kG8ZewJY/sK9bO7Cc9IM=
-----END CERTIFICATE-----`

	leafPEM = `-----BEGIN CERTIFICATE-----
MIIB0zCCAXmgAwIBAgIUZq/sTHI4A2y6Scu2OvDUitbCE6gwCgYIKoZIzj0EAwIw
FzEVMBMGA1UEAwwMVGVzdCBSb290IENBMB4XDTI2MDgwMzA0MTgwOVoXDTI4MTEw
NTA0MTgwOVowGjEYMBYGA1UEAwwPd3d3LmV4YW1wbGUuY29tMFkwEwYHKoZIzj0C
AQYIKoZIzj0DAQcDQgAEfYw9FlUXAqR7nnImqEPA3S7uqzz9tCWf+TYqfwG0SiON
KbBII+2NOeYtOZ6XbA2mY+bptk5siXIJaFnJwkJ206OBnzCBnDAMBgNVHRMBAf8E
AjAAMA4GA1UdDwEB/wQEAwIHgDATBgNVHSUEDDAKBggrBgEFBQcDATAnBgNVHREE
IDAegg93d3cuZXhhbXBsZS5jb22CC2V4YW1wbGUuY29tMB0GA1UdDgQWBBTR8pBS
uxRdVhlFWJZhGpxMIHwPUDAfBgNVHSMEGDAWgBSkcO8A6bSGbFPkI8CVR8IQ85s6
+zAKBggqhkjOPQQDAgNIADBFAiEAq1guVn/uWEw3rNSAc8SgaMn6/novfXnKPl+n
Yd+y94gCIEEmpeJXT9QLdfz4ZnlqhptxjncMGJaNpmFOns9Fp9/E
-----END CERTIFICATE-----`

	leafExpiredPEM = `-----BEGIN CERTIFICATE-----
MIIBwTCCAWegAwIBAgICEAAwCgYIKoZIzj0EAwIwFzEVMBMGA1UEAwwMVGVzdCBS
b290IENBMB4XDTE5MDEwMTAwMDAwMFoXDTIwMDEwMTAwMDAwMFowGjEYMBYGA1UE
AwwPd3d3LmV4YW1wbGUuY29tMFkwEwYHKoZIzj0CAQYIKoZIzj0DAQcDQgAEfYw9
FlUXAqR7nnImqEPA3S7uqzz9tCWf+TYqfwG0SiONKbBII+2NOeYtOZ6XbA2mY+bp
tk5siXIJaFnJwkJ206OBnzCBnDAMBgNVHRMBAf8EAjAAMA4GA1UdDwEB/wQEAwIH
gDATBgNVHSUEDDAKBggrBgEFBQcDATAnBgNVHREEIDAegg93d3cuZXhhbXBsZS5j
b22CC2V4YW1wbGUuY29tMB0GA1UdDgQWBBTR8pBSuxRdVhlFWJZhGpxMIHwPUDAf
BgNVHSMEGDAWgBSkcO8A6bSGbFPkI8CVR8IQ85s6+zAKBggqhkjOPQQDAgNIADBF
AiAR5gK5hMyM6IuGnpSktV3iuHWw08pmXDiQNwpGaN+1tQIhAKNNQsvJkBMprL6m
TJNXpp0KiltJd72RnmEj72Il7KX4
-----END CERTIFICATE-----`

	intermediatePEM = `-----BEGIN CERTIFICATE-----
MIIBnzCCAUSgAwIBAgIUZq/sTHI4A2y6Scu2OvDUitbCE6kwCgYIKoZIzj0EAwIw
FzEVMBMGA1UEAwwMVGVzdCBSb290IENBMB4XDTI2MDgwMzA0MTkxNFoXDTM2MDcz
MTA0MTkxNFowHzEdMBsGA1UEAwwUVGVzdCBJbnRlcm1lZGlhdGUgQ0EwWTATBgcq
hkjOPQIBBggqhkjOPQMBBwNCAARCe69Vy4+C6eSyTHXhUwTwGOSnvrHSNCYA13G5
+aht5xMJ4YbxF/ToORL2SRCrQ0gTKfyqjFAyVcQuMHda6ooOo2YwZDASBgNVHRMB
Af8ECDAGAQH/AgEAMA4GA1UdDwEB/wQEAwIBBjAdBgNVHQ4EFgQUAOaz7U8uJm7T
i4Y53zxpm3/VEkQwHwYDVR0jBBgwFoAUpHDvAOm0hmxT5CPAlUfCEPObOvswCgYI
KoZIzj0EAwIDSQAwRgIhANj+eE1ZhMUMx1O2/ZqFSnMVDzfNjEVha/mU5lkEzlNP
AiEA6nGUCyWH3BkOTlq9PJTD3pMhz6T/9+PD0A7/OebwYVU=
-----END CERTIFICATE-----`

	leafViaIntermediatePEM = `-----BEGIN CERTIFICATE-----
MIIBzTCCAXSgAwIBAgIUHmSUPUQTdhboXa5S0ZFhb3iB50EwCgYIKoZIzj0EAwIw
HzEdMBsGA1UEAwwUVGVzdCBJbnRlcm1lZGlhdGUgQ0EwHhcNMjYwODAzMDQxOTE0
WhcNMjgxMTA1MDQxOTE0WjAaMRgwFgYDVQQDDA9hcGkuZXhhbXBsZS5jb20wWTAT
BgcqhkjOPQIBBggqhkjOPQMBBwNCAAQxp3vP5r3niNiEltfQN7y8euqCXgRTVOrV
pkAUm1FA5oLtLA9LAPZJMRC3b99R/DkU/mlAi3IEeFKnBzA4X2sVo4GSMIGPMAwG
A1UdEwEB/wQCMAAwDgYDVR0PAQH/BAQDAgeAMBMGA1UdJQQMMAoGCCsGAQUFBwMB
MBoGA1UdEQQTMBGCD2FwaS5leGFtcGxlLmNvbTAdBgNVHQ4EFgQU4Ur6pyYw2p+I
Kfm3UvRdBKSWaE0wHwYDVR0jBBgwFoAUAOaz7U8uJm7Ti4Y53zxpm3/VEkQwCgYI
KoZIzj0EAwIDRwAwRAIgZFTgJ8D7I+Oa62VXj9cQWWqFbu5izoYxDT4yQ51YF8UC
ID5K7w5ik/8M38QwmkYJjx1GguteyZozfE6de0IdbInr
-----END CERTIFICATE-----`
)

func mustParse(certPEM string) *x509.Certificate {
	block, _ := pem.Decode([]byte(certPEM))
	if block == nil {
		panic("testdata: invalid PEM")
	}
	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		panic(err)
	}
	return cert
}
