package czml

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIntervalList_WritesOneObjectPerInterval(t *testing.T) {
	t1 := testEpoch.Add(time.Hour)
	t2 := t1.Add(time.Hour)

	got := packetJSON(t, func(p *PacketWriter) {
		billboard := p.OpenBillboardProperty()
		show := billboard.OpenShowProperty()
		list := show.OpenMultipleIntervals()

		first := list.OpenInterval(testEpoch, t1)
		first.WriteBoolean(true)
		first.Close()

		second := list.OpenInterval(t1, t2)
		assert.Same(t, first, second)
		second.WriteBoolean(false)
		second.Close()

		list.Close()
		show.Close()
		billboard.Close()
	})

	assert.Equal(t, `{"billboard":{"show":[`+
		`{"interval":"2012-08-04T16:00:00Z/2012-08-04T17:00:00Z","boolean":true},`+
		`{"interval":"2012-08-04T17:00:00Z/2012-08-04T18:00:00Z","boolean":false}]}}`, got)
}

func TestIntervalList_SamplesPerInterval(t *testing.T) {
	dates := seconds(2)
	values := []Cartesian{NewCartesian(1, 2, 3), NewCartesian(4, 5, 6)}

	got := packetJSON(t, func(p *PacketWriter) {
		position := p.OpenPositionProperty()
		list := position.OpenMultipleIntervals()
		iv := list.OpenInterval(dates[0], dates[1])
		iv.WriteCartesianSamples(dates, values)
		iv.Close()
		list.Close()
		position.Close()
	})

	assert.Equal(t, `{"position":[{"interval":"2012-08-04T16:00:00Z/2012-08-04T16:00:01Z",`+
		`"epoch":"2012-08-04T16:00:00Z","cartesian":[0,1,2,3,1,4,5,6]}]}`, got)
}

func TestIntervalList_RequiresUnwrittenProperty(t *testing.T) {
	packetJSON(t, func(p *PacketWriter) {
		label := p.OpenLabelProperty()
		text := label.OpenTextProperty()
		text.WriteString("x")

		assertUsagePanic(t, func() { text.OpenMultipleIntervals() })

		text.Close()
		label.Close()
	})
}

func TestIntervalList_OwnerBlockedUntilClosed(t *testing.T) {
	packetJSON(t, func(p *PacketWriter) {
		position := p.OpenPositionProperty()
		list := position.OpenMultipleIntervals()

		assertUsagePanic(t, func() { position.WriteCartesianComponents(1, 2, 3) })
		assertUsagePanic(t, func() { position.Close() })

		list.Close()
		position.Close()
	})
}

func TestIntervalList_OwnerRejectsWritesAfterList(t *testing.T) {
	packetJSON(t, func(p *PacketWriter) {
		label := p.OpenLabelProperty()
		text := label.OpenTextProperty()
		list := text.OpenMultipleIntervals()
		iv := list.OpenInterval(testEpoch, testEpoch.Add(time.Hour))
		iv.WriteString("a")
		iv.Close()
		list.Close()

		assertUsagePanic(t, func() { text.WriteString("b") })
		assertUsagePanic(t, func() { text.WriteReferenceString("other#label.text") })
		assertUsagePanic(t, func() { text.WriteInterval(testEpoch, testEpoch) })
		assertUsagePanic(t, func() { text.OpenMultipleIntervals() })

		text.Close()
		label.Close()
	})
}

func TestIntervalList_CompositeOwnerRejectsPropertyAfterList(t *testing.T) {
	packetJSON(t, func(p *PacketWriter) {
		label := p.OpenLabelProperty()
		list := label.OpenMultipleIntervals()
		list.Close()

		assertUsagePanic(t, func() { label.OpenTextProperty() })

		label.Close()
	})
}
