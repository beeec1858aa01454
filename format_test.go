package numerics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestString(t *testing.T) {
	require.Equal(t, "<1, 2>", Vec(1, 2).String())
	require.Equal(t, "<1.5, -2.25>", Vec(1.5, -2.25).String())
	require.Equal(t, "<0.1, 0>", Vec(0.1, 0).String())
	require.Equal(t, "<NaN, +Inf>", Vec(nan32(), inf32()).String())
}

func TestFormatVerbs(t *testing.T) {
	v := Vec(1, 2.5)
	require.Equal(t, "<1, 2.5>", fmt.Sprintf("%v", v))
	require.Equal(t, "<1, 2.5>", fmt.Sprint(v))
	require.Equal(t, "<1.00, 2.50>", fmt.Sprintf("%.2f", v))
	require.Equal(t, "< 1.0,  2.5>", fmt.Sprintf("%4.1f", v))
	require.Equal(t, "numerics.Vector2{X:1, Y:2.5}", fmt.Sprintf("%#v", v))
	require.Equal(t, "%!d(numerics.Vector2=<1, 2.5>)", fmt.Sprintf("%d", v))
}

func TestText(t *testing.T) {
	v := Vec(1.5, 2)
	tests := []struct {
		format string
		tag    language.Tag
		want   string
	}{
		{"", language.Und, "<1.5, 2>"},
		{"G", language.Und, "<1.5, 2>"},
		{"g2", language.Und, "<1.5, 2>"},
		{"F", language.Und, "<1.50, 2.00>"},
		{"F0", language.Und, "<2, 2>"},
		{"F3", language.Und, "<1.500, 2.000>"},
		{"E2", language.Und, "<1.50E+00, 2.00E+00>"},
		{"F2", language.English, "<1.50, 2.00>"},
		{"F2", language.German, "<1,50; 2,00>"},
		{"G", language.French, "<1,5; 2>"},
	}
	for _, tt := range tests {
		t.Run(tt.format+"/"+tt.tag.String(), func(t *testing.T) {
			got, err := v.Text(tt.format, tt.tag)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestTextGrouping(t *testing.T) {
	v := Vec(1234.5, -2)

	got, err := v.Text("N2", language.Und)
	require.NoError(t, err)
	require.Equal(t, "<1,234.50, -2.00>", got)

	got, err = v.Text("N1", language.German)
	require.NoError(t, err)
	require.Equal(t, "<1.234,5; -2,0>", got)
}

func TestTextInvalidFormat(t *testing.T) {
	for _, f := range []string{"X", "F-1", "Fx", "F+2", "F100", "?"} {
		_, err := Vec(1, 2).Text(f, language.Und)
		require.ErrorIs(t, err, ErrInvalidFormat, f)
	}
}

func TestFormatPadding(t *testing.T) {
	v := Vec(1, 2)
	require.Equal(t, "    <1, 2>", fmt.Sprintf("%10v", v))
	require.Equal(t, "<1, 2>    |", fmt.Sprintf("%-10s|", v))
	require.Equal(t, "<1, 2>", fmt.Sprintf("%3v", v))
}

func TestTextNonFinite(t *testing.T) {
	v := Vec(nan32(), inf32())
	for _, f := range []string{"G", "F2", "N2", "E3"} {
		for _, tag := range []language.Tag{language.Und, language.German} {
			got, err := v.Text(f, tag)
			require.NoError(t, err)
			require.Contains(t, got, "NaN", f)
			require.Contains(t, got, "+Inf", f)
		}
	}

	got, err := Vec(-inf32(), 1).Text("N2", language.Und)
	require.NoError(t, err)
	require.Equal(t, "<-Inf, 1.00>", got)
}
