package catalog

import (
	"os"
	"testing"

	dispCfg "github.com/sofmon/dispatch/cfg"
)

func Test_static(t *testing.T) {

	s := Static{
		"github.com/acme/users.UserAPI": "http://users",
		"BillingAPI":                    "http://billing",
	}

	cases := map[string]string{
		"github.com/acme/users.UserAPI":      "http://users",   // canonical name
		"github.com/acme/billing.BillingAPI": "http://billing", // bare type name fallback
		"BillingAPI":                         "http://billing",
		"github.com/acme/other.OtherAPI":     "",
	}

	for contract, want := range cases {
		t.Run(contract, func(t *testing.T) {
			url, err := s.Resolve(contract)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if url != want {
				t.Errorf("expected %q, got %q", want, url)
			}
		})
	}
}

func Test_from_config(t *testing.T) {

	folder := t.TempDir()

	err := os.WriteFile(folder+"/services", []byte(`{"UserAPI":"http://users"}`), 0600)
	if err != nil {
		t.Fatal(err)
	}
	if err = dispCfg.SetConfigLocation(folder); err != nil {
		t.Fatal(err)
	}

	s, err := FromConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	url, err := s.Resolve("github.com/acme/users.UserAPI")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "http://users" {
		t.Errorf("expected configured URL, got %q", url)
	}
}
