package conv

import "testing"

func TestItoaUtoa(t *testing.T) {
	var buf [20]byte
	for v, want := range map[int64]string{0: "0", 7: "7", -128: "-128", 9223372036854775807: "9223372036854775807"} {
		if got := string(Itoa(buf[:], v)); got != want {
			t.Fatalf("Itoa(%d) = %q", v, got)
		}
	}
	if got := string(Utoa(buf[:], 18446744073709551615)); got != "18446744073709551615" {
		t.Fatalf("Utoa max = %q", got)
	}
	if got := Utoa(nil, 5); len(got) != 0 {
		t.Fatalf("empty buffer should yield empty slice")
	}
}
