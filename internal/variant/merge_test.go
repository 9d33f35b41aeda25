package variant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   []string
		want string
	}{
		{name: "later background wins", in: []string{"bg-blue-600 text-white", "bg-transparent"}, want: "text-white bg-transparent"},
		{name: "duplicates collapse to last", in: []string{"flex rounded flex"}, want: "rounded flex"},
		{name: "text size and colour are distinct", in: []string{"text-sm text-white text-lg"}, want: "text-white text-lg"},
		{name: "text align is distinct", in: []string{"text-left text-gray-900 text-center"}, want: "text-gray-900 text-center"},
		{name: "modifiers scope conflicts", in: []string{"bg-blue-600 hover:bg-blue-700 hover:bg-gray-800"}, want: "bg-blue-600 hover:bg-gray-800"},
		{name: "modifier order is irrelevant", in: []string{"dark:hover:bg-gray-800 hover:dark:bg-black"}, want: "hover:dark:bg-black"},
		{name: "shorthand evicts longhand", in: []string{"px-4 py-2 pt-1 p-0"}, want: "p-0"},
		{name: "longhand refines shorthand", in: []string{"p-4 px-2"}, want: "p-4 px-2"},
		{name: "axis shorthand", in: []string{"pl-2 pr-3 px-4"}, want: "px-4"},
		{name: "border width vs colour vs style", in: []string{"border border-red-500 border-dashed border-0 border-transparent"}, want: "border-dashed border-0 border-transparent"},
		{name: "side borders", in: []string{"border-t-2 border-t-4 border-b"}, want: "border-t-4 border-b"},
		{name: "ring width vs colour", in: []string{"ring-2 ring-blue-500 ring-4 ring-offset-2 ring-offset-white"}, want: "ring-blue-500 ring-4 ring-offset-2 ring-offset-white"},
		{name: "font weight vs family", in: []string{"font-medium font-mono font-bold"}, want: "font-mono font-bold"},
		{name: "shadow sizes", in: []string{"shadow-sm shadow-none"}, want: "shadow-none"},
		{name: "display", in: []string{"inline-flex hidden"}, want: "hidden"},
		{name: "opacity and cursor", in: []string{"opacity-50 cursor-not-allowed opacity-80 cursor-wait"}, want: "opacity-80 cursor-wait"},
		{name: "size evicts width and height", in: []string{"w-4 h-4 size-8"}, want: "size-8"},
		{name: "negative values share group", in: []string{"mt-2 -mt-4"}, want: "-mt-4"},
		{name: "important is its own scope", in: []string{"!bg-red-500 bg-blue-500"}, want: "!bg-red-500 bg-blue-500"},
		{name: "arbitrary values", in: []string{"text-[14px] text-[#fff] text-sm"}, want: "text-[#fff] text-sm"},
		{name: "arbitrary modifiers keep colons", in: []string{"[&:hover]:bg-red-500 [&:hover]:bg-blue-500"}, want: "[&:hover]:bg-blue-500"},
		{name: "unknown classes only collapse on exact match", in: []string{"btn btn-primary btn"}, want: "btn-primary btn"},
		{name: "rounded corners", in: []string{"rounded-tl-lg rounded-md"}, want: "rounded-md"},
		{name: "flex direction vs display", in: []string{"flex flex-col flex-row"}, want: "flex flex-row"},
		{name: "empty input", in: []string{"", "   "}, want: ""},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Merge(tc.in...))
		})
	}
}

func TestSplitModifiers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"md", "hover", "bg-red-500"}, splitModifiers("md:hover:bg-red-500"))
	assert.Equal(t, []string{"[&:nth-child(3)]", "p-2"}, splitModifiers("[&:nth-child(3)]:p-2"))
	assert.Equal(t, []string{"bg-[url(a:b)]"}, splitModifiers("bg-[url(a:b)]"))
}
