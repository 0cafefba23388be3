package accesslog

import (
	"io"
	"strings"
	"testing"
)

var benchSearchResultLine = `{"timestamp":"2026-08-24T12:30:45.123Z","message-type":"RESULT","operation-type":"SEARCH","connection-id":8,"operation-id":31,"message-id":32,"base-dn":"dc=example,dc=com","scope":2,"filter":"(uid=alice)","requested-attributes":["cn","uid","mail"],"result-code":0,"processing-time-millis":12.75,"entries-returned":5,"unindexed":false,"response-control-oids":["1.2.840.113556.1.4.319"]}`

func BenchmarkDecodeConnect(b *testing.B) {
	rec, err := parseRecord([]byte(`{"timestamp":"2026-08-24T12:30:45.123Z","message-type":"CONNECT","connection-id":42,"source-address":"2.3.4.5","source-port":1234,"protocol":"LDAP"}`))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Decode(rec); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeSearchResult(b *testing.B) {
	rec, err := parseRecord([]byte(benchSearchResultLine))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Decode(rec); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkReadMessage(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 1000; i++ {
		sb.WriteString(benchSearchResultLine)
		sb.WriteByte('\n')
	}
	data := sb.String()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)) / 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i += 1000 {
		r := NewReader(strings.NewReader(data))
		for {
			if _, err := r.ReadMessage(); err == io.EOF {
				break
			} else if err != nil {
				b.Fatal(err)
			}
		}
		r.Close()
	}
}
