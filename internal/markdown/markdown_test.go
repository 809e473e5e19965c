package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderSubset(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bold paragraph and bullet",
			in:   "**A** and\n\n- B",
			want: "<p><strong>A</strong> and</p><p>• B</p>",
		},
		{
			name: "bullets inside a paragraph",
			in:   "Features:\n- fast\n- small",
			want: "<p>Features:<br>• fast<br>• small</p>",
		},
		{
			name: "plain text",
			in:   "just text",
			want: "<p>just text</p>",
		},
		{
			name: "several bold spans are not greedy",
			in:   "**one** and **two**",
			want: "<p><strong>one</strong> and <strong>two</strong></p>",
		},
		{
			name: "unsupported constructs stay literal",
			in:   "# Title\n[link](http://x) *em* 1. item",
			want: "<p># Title\n[link](http://x) *em* 1. item</p>",
		},
		{
			name: "hyphen without space is not a bullet",
			in:   "-not a bullet",
			want: "<p>-not a bullet</p>",
		},
		{
			name: "markup is escaped",
			in:   "<b>x</b> & **y**",
			want: "<p>&lt;b&gt;x&lt;/b&gt; &amp; <strong>y</strong></p>",
		},
		{
			name: "unterminated bold stays literal",
			in:   "**open",
			want: "<p>**open</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, string(RenderSubset(tt.in)))
		})
	}
}
