package bunk

import (
	"strings"
	"testing"
	"unicode"
)

func seq(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i)
	}
	return data
}

func TestEncodeGolden(t *testing.T) {
	tests := []struct {
		data     []byte
		settings Settings
		want     string
	}{
		{
			data:     nil,
			settings: Settings{WordLen: 3, Checksum: ChecksumDisabled},
			want:     "",
		},
		{
			data:     nil,
			settings: DefaultSettings(),
			want:     "ca",
		},
		{
			data:     nil,
			settings: Settings{WordLen: 3, Checksum: ChecksumLength1, Decorate: true},
			want:     "Ca.",
		},
		{
			data:     []byte{0, 0, 0, 0},
			settings: Settings{WordLen: 3, Checksum: ChecksumDisabled},
			want:     "glapaxi ze",
		},
		{
			data:     []byte("aftersun"),
			settings: DefaultSettings(),
			want:     "camobra oerfe hakespe",
		},
		{
			data:     seq(32),
			settings: DefaultSettings(),
			want:     "glasonorn zopaxence bussteko phopregu pyaesa fekaiious jarumpla vocreism fuquiga prospaas anthdusdo",
		},
		{
			data:     seq(32),
			settings: Settings{WordLen: 3, Checksum: ChecksumLength1, Decorate: true},
			want:     "Glasonorn zopaxence, bussteko, phopregu pyaesa fekaiious, jarumpla vocreism fuquiga prospaas, anthdusdo.",
		},
		{
			data:     seq(32),
			settings: Settings{WordLen: 2, Checksum: ChecksumDisabled},
			want:     "glason ornzo paxence busste kopho pregu pyae safe kaiious jarum plavo creism fuqui gapro spaas anthdus",
		},
		{
			data:     []byte{33, 14, 224, 134},
			settings: Settings{WordLen: 3, Checksum: ChecksumLength4},
			want:     "flaseanth anceshaot spafi",
		},
		{
			data:     []byte{231, 6, 39, 34},
			settings: Settings{WordLen: 5, Checksum: ChecksumLength1},
			want:     "al tumflaimgre",
		},
		{
			data:     []byte("it's such a beautiful day"),
			settings: Settings{WordLen: 3, Checksum: ChecksumDisabled},
			want:     "busprofla sumsivefe hatinnox pritrivan terpure crazarum neiresal fisiondy ui",
		},
		{
			data:     []byte("it's such a beautiful day"),
			settings: Settings{Checksum: ChecksumLength2, Decorate: true},
			want:     "Busproflasumsivefehatinnoxpritrivanterpurecrazarumneiresalfisiondyuirumspe.",
		},
		{
			data:     []byte{7},
			settings: Settings{WordLen: 1, Checksum: ChecksumDisabled, Decorate: true},
			want:     "Bu.",
		},
	}
	for _, tt := range tests {
		if got := EncodeWithSettings(tt.data, tt.settings); got != tt.want {
			t.Fatalf("encoding %v with %+v:\n got %q\nwant %q", tt.data, tt.settings, got, tt.want)
		}
	}
	if got := Encode([]byte("aftersun")); got != "camobra oerfe hakespe" {
		t.Fatalf("Encode should use default settings, got %q", got)
	}
}

func TestEncodeEntropyEngaged(t *testing.T) {
	s := Settings{WordLen: 3, Checksum: ChecksumDisabled}
	got := EncodeWithSettings([]byte{0, 0, 0, 0}, s)
	naive := strings.Repeat(Syllable(0), 4)
	if strings.ReplaceAll(got, " ", "") == naive {
		t.Fatalf("zero bytes encode as repeated syllable %q", got)
	}
}

func TestEncodeWordLength(t *testing.T) {
	data := seq(200)
	for _, wordLen := range []uint8{1, 2, 3, 7} {
		s := Settings{WordLen: wordLen, Checksum: ChecksumLength2}
		encoded := EncodeWithSettings(data, s)
		for _, word := range strings.Fields(encoded) {
			decoded, err := DecodeWithChecksum(word, ChecksumDisabled)
			if err != nil {
				t.Fatalf("word %q does not decode: %v", word, err)
			}
			if len(decoded) > int(wordLen) {
				t.Fatalf("word %q has %d syllables, limit is %d", word, len(decoded), wordLen)
			}
		}
	}
	// WordLen 1 puts every syllable into a word of its own
	encoded := EncodeWithSettings(data, Settings{WordLen: 1, Checksum: ChecksumLength3})
	if n := len(strings.Fields(encoded)); n != len(data)+3 {
		t.Fatalf("expected %d words, got %d", len(data)+3, n)
	}
}

func TestEncodeDecoration(t *testing.T) {
	data := seq(256)
	plain := EncodeWithSettings(data, Settings{WordLen: 3, Checksum: ChecksumLength1})
	decorated := EncodeWithSettings(data, Settings{WordLen: 3, Checksum: ChecksumLength1, Decorate: true})
	if !unicode.IsUpper(rune(decorated[0])) || !strings.HasSuffix(decorated, ".") {
		t.Fatalf("decorated text should start upper case and end with a period: %q", decorated)
	}
	if !strings.Contains(decorated, ", ") || !strings.Contains(decorated, ". ") {
		t.Fatalf("expected commas and periods in %q", decorated)
	}
	// decorations replace spaces and change case only
	undecorated := strings.NewReplacer(", ", " ", ". ", " ").Replace(strings.TrimSuffix(decorated, "."))
	if strings.ToLower(undecorated) != plain {
		t.Fatalf("decorations must not change words:\n%q\n%q", undecorated, plain)
	}
	// every period is followed by a capitalized syllable
	for i := 0; i+2 < len(decorated); i++ {
		if decorated[i] == '.' && !unicode.IsUpper(rune(decorated[i+2])) {
			t.Fatalf("no capital after period at %d in %q", i, decorated)
		}
	}
	if strings.ContainsFunc(plain, func(r rune) bool { return r != ' ' && !unicode.IsLower(r) }) {
		t.Fatalf("plain encoding must be lower case letters and spaces: %q", plain)
	}
}

func TestEncodeDeterministic(t *testing.T) {
	data := []byte("deterministic")
	s := Settings{WordLen: 4, Checksum: ChecksumLength3, Decorate: true}
	if EncodeWithSettings(data, s) != EncodeWithSettings(data, s) {
		t.Fatalf("encoding must be deterministic")
	}
}
