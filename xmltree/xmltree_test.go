package xmltree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doc = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE score-timewise PUBLIC "-//Recordare//DTD MusicXML 3.1 Timewise//EN" "http://www.musicxml.org/dtds/timewise.dtd">
<score-timewise version="3.1">
  <measure number="1">
    <part id="P1">
      <attributes><divisions>2</divisions></attributes>
      <note><pitch><step>C</step><octave>4</octave></pitch><duration>2</duration></note>
    </part>
  </measure>
  <measure number="2">
    <part id="P1">
      <attributes><divisions>4</divisions></attributes>
    </part>
  </measure>
</score-timewise>`

func TestParseBuildsTree(t *testing.T) {
	root, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal("score-timewise", root.Tag)
	version, ok := root.Attr("version")
	assert.True(ok)
	assert.Equal("3.1", version)
	assert.Len(root.Children, 2)

	part := root.Find("measure/part")
	require.NotNil(t, part)
	id, _ := part.Attr("id")
	assert.Equal("P1", id)
	assert.Equal("C", part.Find("note/pitch/step").Text)
	assert.True(part.Has("note"))
	assert.False(part.Has("backup"))
}

func TestFindAllCrossesSiblings(t *testing.T) {
	root, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)

	var texts []string
	for _, d := range root.FindAll("measure/part/attributes/divisions") {
		texts = append(texts, d.Text)
	}
	assert.Equal(t, []string{"2", "4"}, texts)
	assert.Nil(t, root.Find("measure/part/forward"))
}

func TestParseHonoursDeclaredCharset(t *testing.T) {
	latin1 := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><score-part><part-name>Fl\xfbte</part-name></score-part>"
	root, err := Parse(strings.NewReader(latin1))
	require.NoError(t, err)
	assert.Equal(t, "Flûte", root.Child("part-name").Text)
}

func TestParseRejectsBrokenXML(t *testing.T) {
	_, err := Parse(strings.NewReader("<score-timewise><measure></score-timewise>"))
	assert.Error(t, err)

	_, err = Parse(strings.NewReader(""))
	assert.Error(t, err)
}
