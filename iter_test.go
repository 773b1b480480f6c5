package optional

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIter_YieldsHeldValueOnce(t *testing.T) {
	collected := []int{}
	for v := range Some(23).Iter() {
		collected = append(collected, v)
	}

	assert.Equal(t, []int{23}, collected)
}

func TestIter_YieldsNothingOnNone(t *testing.T) {
	for range None[int]().Iter() {
		t.Error("None yielded a value")
	}
}

func TestIter_Restartable(t *testing.T) {
	opt := Some(23)
	seq := opt.Iter()

	first := []int{}
	for v := range seq {
		first = append(first, v)
	}
	second := []int{}
	for v := range seq {
		second = append(second, v)
	}

	assert.Equal(t, first, second)
}

func TestIter_HeldCollectionYieldsAsSingleElement(t *testing.T) {
	collected := [][]string{}
	for v := range Some([]string{"a", "b", "c"}).Iter() {
		collected = append(collected, v)
	}

	assert.Len(t, collected, 1)
	assert.Equal(t, []string{"a", "b", "c"}, collected[0])
}

func TestIter_StopsWhenConsumerBreaks(t *testing.T) {
	yields := 0
	for range Some(23).Iter() {
		yields++
		break
	}

	assert.Equal(t, 1, yields)
}

func TestToSlice(t *testing.T) {
	assert.Equal(t, []int{23}, Some(23).ToSlice())
	assert.Equal(t, []int{}, None[int]().ToSlice())
}
