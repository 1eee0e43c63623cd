package cmd

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"strings"
)

func TestLoadDates(x *testing.T) {
	t := assert.New(x)
	days, err := LoadDates(strings.NewReader(
		"id,Date,title\n" +
			"0,2017-01-03,a\n" +
			"1,2017-01-01,b\n" +
			"2,2017-02-01,c\n" +
			"3,2017-01-01,d\n"))
	t.Nil(err)
	t.Equal([]int{2, 0, 31, 0}, days)

	days, err = LoadDates(strings.NewReader("date\n"))
	t.Nil(err)
	t.Len(days, 0)

	days, err = LoadDates(strings.NewReader(""))
	t.Nil(err)
	t.Len(days, 0)
}

func TestLoadDatesErrors(x *testing.T) {
	t := assert.New(x)
	_, err := LoadDates(strings.NewReader("id,when\n0,2017-01-01\n"))
	t.NotNil(err)
	_, err = LoadDates(strings.NewReader("date\n2017-13-01\n"))
	t.NotNil(err)
	_, err = LoadDates(strings.NewReader("id,date\n0\n"))
	t.NotNil(err)
}
