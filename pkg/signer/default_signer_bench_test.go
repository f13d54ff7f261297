package signer

import (
	"testing"

	"github.com/mitchell-amasia/bol.com-plaza-api-clients/pkg/credentials"
)

func BenchmarkPrepare_BodilessGet(b *testing.B) {
	cred, err := credentials.New("abc", "secret")
	if err != nil {
		b.Fatal(err)
	}
	s := NewDefaultSigner()
	desc := RequestDescriptor{
		Method: MethodGet,
		Path:   "/services/rest/orders/v1/open/",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Prepare(desc, cred); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPrepare_PostWithBody(b *testing.B) {
	cred, err := credentials.New("abc", "secret")
	if err != nil {
		b.Fatal(err)
	}
	s := NewDefaultSigner()
	desc := RequestDescriptor{
		Method:      MethodPost,
		Path:        "/services/rest/orders/v1/process",
		ContentType: "application/xml",
		Body:        []byte("<order><id>123</id></order>"),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Prepare(desc, cred); err != nil {
			b.Fatal(err)
		}
	}
}
