package render

import "encoding/base64"

// faviconPNG is the 50x50 icon shipped with every export as favicon.png.
const faviconPNG = "iVBORw0KGgoAAAANSUhEUgAAADIAAAAyCAYAAAAeP4ixAAAACXBIWXMAAAsTAAALEwEAmpwYAAAHrElEQVR4nO1aDYxUVxW+tMVqrJqqqUYb991z37x335RuDVCR+rOioN031P4kq7ZS46LUWEwrUFKDBlrXAsVSu8i8ZSG0abWIVLozG1qlKW7K0gq11J+yago7A6iwRaA1IAT2vfnMvTtPZt/OzryFLLttPMnJzt4357zz3XPuPeeeO4z9n94ihBbmwmMbsZLdDI+l4bHjSLMd8Ni9SLMupNnLWMk+iDXsA2hhSSxiF7DRRGhhH4bHNsNjqMpp9lrJ56ai/JfgsaVIs8aRA9HKJDy2v4zBhZLPf408e6P4fKnW4bHXi+M+lrN3nH8QHrsUHusuGvhbpNkPi5/bkGZL4LFepNlCeOyLJQAa0crGwmOXhaGFNKuDx+6Gx+rPOwhFWMkm6ZlNs21qJpVhaGFX/c/AR9jb9d9mdjE8dgc8ZrPRSljFJipD2VuRwNgFsKz3wzZsSDG51xZf8JNmgy/FLF+ac3xJCwNJPw4c0RpIWh9I8ZQvxVZf0su+Q92+Q4d9SacCR0Cx74jAl7Tfd6gjcMRSOOKKczPQpol+kn/Vd+iOwBH3BJJWBFL8PJD0a1+KHb6k3b4UR0MDhot9RwSBQ4/CNN891BkeE0ixNs5LTkvCvxyB3VJgp03osAgZi/BYguOnJuE+QVggOO4WhNmC43biuJUMzCCO63kff8bo4/GGodmsMSBqDFxjcLxg0xlAUryI2tp3xgbiO+LLofBWS+AHRUO+TRy3cI7p3MCnDAO1NQasGgMTDQNTDQM3cY6vE8d3iWOhICw3OVabhHUJwvoE4akE4ekEodMSmv9kk+a8TdgrCUck4agUOF1893ZL4OOGgWOydPJoeWwggSN+pYR2WAKfNgw8bBJ+UTTieYvwik3YJwX+PcwhFThCT87O/l75T+wQ8yV1KSE1o83mGSUjwTOI68krHet1yI0JROxTAosEx6OJkQXyDeLYEgHi22JeXCA9SmCe4Ng4wkBmC65Dut+4FPfHBaK31LmCo22EgcwVHE8OAEIrYgKhY0pA7VS/TPARBbJAcL3rRTyyNi4QnWXvMTkeibvYp3wShdUtKHRuRaFjCwrLliC4+qozzz/2URTmz0Vh+TIUbr8NwfhxsfQ2Ca53zcj4unhAdCYVOqE9EANIofFW4PhxDKCeHgQ3TEdhViNw9Gj/ZwcPaLlquu83OVZFbZDUFgtIKKCSmAqvii+rm1weREiHXgNOnij/7OQJBA03VtT/gElIm9Hwpt9UBQHGLgwFnrX6tr+K3mj1cE700osV9T9kcjwU8YgqOKsDmTBhbCjwR1voWqgikN89f25AAO3VwfSvMAkPRjziO+L3sTwSrpF/2gKTjSpAtnWeOxB32qD6vQRhmYgAkdQVa434UryuBFTxJmsMXeEOW2gdOYJgnDWo/laTsGSAR6g7HhCHcqGQKqX/0a/6jPDnpwC+f9Y4CoubKnp8bYKjKbLh+FIcjAtkZyh0Ezf6VZ/lvdJydiC2dSK4IlFR92OJviNBZI28EQuI2t5CIXUGGVDrRHmchcKzzwwNRdeu/glzEF6X6DuYRdbI6bhAVodC95oca+PUWwrMmlXxPPHCNp3pq+p0BJ6wCPPLpADU1V0UI7TE90MBlVUXD0hIFcJs3p3AiRODg3jyCQRX2rH1tSUIc0QZIMnkJTGAmDNCAXX+vrNKUhzA9VMH5pcjh1H43l1D0+MIfTyeXRbI5e+tCgS2uCYU2G4TvkLGkA3Q3pk/p6+mWv84gknjz0rHMxbhtnKhVUuXVQdC9B7fEQUloBoDdVWS4nByh0WYWQ6Ibb+rKpDS4+5JR8CpMdSWNyJAOi2h20elY6ryiLXYFQWO2BQKXl1j4FClpDiMvF2FdqTe8yXtiQVCA5F0Xyh4Hef4c5WkOFy8wxK4OVq4SsrEBtLriBtCwW+SoRfdSAD5WYLjW5E14jt8ZmwgkPJ9KoOGhZvqL+2RQncE9xU7goPx34vfK2XVUfxDscOoFrDaVlVTQWVuVU81F4vDBYLr7f5rnOvKW3Uwd9n9wuq42oxiAymGV5sSPlU8Oyulqker2pjjB+HJxe+U8jTD0OcaVbephat2IZUbVLtJGf4jQfiJyfWErUsQ2i3Cc8VuZtRDvkPzhwRCe8Wy+Pnotsdnao+9Ww0AkxRmIEWzvs9w6NBIAPB1TqM1SCbfdlYgygKbMGEsbPtDsHhtb5I+qzr3vhSz+y5zRHPgiMdV9ew74iXNkvboyxwpDirvqhivaLSkY74jDviO+FvfhRAtRNJMhu/PuZtq8m62PT8904hFi0bPdbe678CVH7lUM2Njos93NWy4JJfKbMm57Xep//dOb/9cPpWF4lwq+5ecm1mcdzNTRhWoUtrVsEGH0d7rsjyXyvTm3Ky/tz77CTWWT2VuzKWyXSGgPlCZWWy0UT6VmZlLZQr5+nZ9fZ1PZZu0wW5m96vXPq0vYtGw4cLuVGZqPpVdlnczm3NuZhIbbZRzM23a8Pq2W0Lv5N3MK2qsO5X9DnuzUN7N9CijVViFYzk3e31xXRwYteuhlPalNlExjHpKx8EwJp/KPpdzs4f3N2w4/z/7GCq9eu3Gy/Nu9lTOzQ64Ouio67goX9ehf13xpqCD0zbHv4Iuof8CkH/dHuwAY4IAAAAASUVORK5CYII="

// Favicon returns the decoded favicon.png bytes.
func Favicon() []byte {
	data, err := base64.StdEncoding.DecodeString(faviconPNG)
	if err != nil {
		panic("render: invalid embedded favicon: " + err.Error())
	}
	return data
}

// FaviconDataURI returns the favicon as an inline data URI for documents
// that must not reference sibling files.
func FaviconDataURI() string {
	return "data:image/png;base64," + faviconPNG
}
