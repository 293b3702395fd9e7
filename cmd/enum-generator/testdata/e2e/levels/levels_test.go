package levels

import (
	"reflect"
	"testing"

	"example.com/app/colors"
)

func TestLevelCore(t *testing.T) {
	if LevelMemberCount != 5 || LevelIsFlagEnum {
		t.Fatal("constants")
	}

	if got := LevelNames(); !reflect.DeepEqual(got, []string{"Debug", "Info", "Warn", "Error", "Fatal"}) {
		t.Fatalf("names %v", got)
	}

	if v, ok := TryParseLevel("Fatal", LevelFormatName, nil); !ok || v != colors.Error {
		t.Fatalf("TryParseLevel = %d, %v", v, ok)
	}

	if v, ok := TryParseLevel("Warning", LevelFormatLabel, nil); !ok || v != colors.Warn {
		t.Fatalf("TryParseLevel = %d, %v", v, ok)
	}

	if !IsLevelDefined(colors.Fatal) || IsLevelDefined(colors.Level(7)) {
		t.Fatal("IsLevelDefined")
	}

	if got := LevelLabels(); !reflect.DeepEqual(got, []LevelText{{Value: colors.Warn, Text: "Warning"}}) {
		t.Fatalf("labels %v", got)
	}
}
