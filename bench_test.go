package rex

import (
	"bytes"
	"regexp"
	"testing"
)

// Generate 1MB of test data
func generateBenchData() string {
	var buf bytes.Buffer
	words := []string{
		"hello world ", "test123 ", "foo456bar ", "abc ", "xyz789 ",
		"https://www.google.com:8080/search?q=go ", "word42 ", "sample99text ",
	}
	for buf.Len() < 1024*1024 {
		for _, w := range words {
			buf.WriteString(w)
		}
	}
	return buf.String()
}

var benchData = generateBenchData()

func BenchmarkBuildURL(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = urlPattern()
	}
}

func BenchmarkCompileURL(b *testing.B) {
	f := urlPattern()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Compile(f); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkWordDigit_1MB_Stdlib(b *testing.B) {
	re := regexp.MustCompile(Word.OneOrMore().Then(Digit.OneOrMore()).String())
	b.SetBytes(int64(len(benchData)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		re.FindAllStringSubmatchIndex(benchData, -1)
	}
}

func BenchmarkWordDigit_1MB_Rex(b *testing.B) {
	re := MustCompile(Word.OneOrMore().Then(Digit.OneOrMore()))
	b.SetBytes(int64(len(benchData)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		re.FindAll(benchData, -1)
	}
}

func BenchmarkURLPrefix(b *testing.B) {
	re := MustCompile(urlPattern())
	input := "https://www.google.com:8080/search?q=go#top"
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if re.MatchPrefix(input) == nil {
			b.Fatal("no match")
		}
	}
}
