package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/Gregy/synology-surveillance-get-image/internal/infrastructure/logging"
)

func TestMaskSensitiveAttrs(t *testing.T) {
	type args struct {
		groups []string
		attr   slog.Attr
	}
	tests := []struct {
		name string
		args args
		want slog.Attr
	}{
		{
			name: "正常系: 機密キー(password)が完全一致でマスクされる",
			args: args{attr: slog.String("password", "my-password")},
			want: slog.String("password", "[REDACTED]"),
		},
		{
			name: "正常系: 機密キー(passwd)が完全一致でマスクされる",
			args: args{attr: slog.String("passwd", "my-password")},
			want: slog.String("passwd", "[REDACTED]"),
		},
		{
			name: "正常系: 機密キー(sid)が完全一致でマスクされる",
			args: args{attr: slog.String("sid", "abcdef")},
			want: slog.String("sid", "[REDACTED]"),
		},
		{
			name: "正常系: 大文字小文字を区別せずにマスクされる",
			args: args{attr: slog.String("Synology_Password", "my-password")},
			want: slog.String("Synology_Password", "[REDACTED]"),
		},
		{
			name: "正常系: url属性はクエリの機密パラメータだけがマスクされる",
			args: args{attr: slog.String("url", "https://nas/webapi/auth.cgi?account=admin&passwd=pw")},
			want: slog.String("url", "https://nas/webapi/auth.cgi?account=admin&passwd=***"),
		},
		{
			name: "正常系: 機密でないキーはそのまま",
			args: args{attr: slog.Int("camera", 3)},
			want: slog.Int("camera", 3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := logging.MaskSensitiveAttrs(tt.args.groups, tt.args.attr)

			if diff := cmp.Diff(tt.want.String(), got.String()); diff != "" {
				t.Errorf("MaskSensitiveAttrs() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMaskSensitiveAttrs_WithJSONHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		ReplaceAttr: logging.MaskSensitiveAttrs,
	}))

	logger.Info("login", slog.Group("synology", slog.String("passwd", "secret"), slog.String("account", "admin")))

	var record map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}
	group, ok := record["synology"].(map[string]interface{})
	if !ok {
		t.Fatalf("synology group missing: %v", record)
	}
	want := map[string]interface{}{"passwd": "[REDACTED]", "account": "admin"}
	if diff := cmp.Diff(want, group); diff != "" {
		t.Errorf("masked group mismatch (-want +got):\n%s", diff)
	}
}
