package cmd

const rootLongDescription = `Breadboard turns a parsed bill of materials into a concrete layout on a
solderless breadboard: component values are decoded from manufacturer
marking notations, and every component instance is assigned to real hole
positions, including power-rail jumper wires for active circuits.

Two board sizes are supported: the full-size 830-point board (63 columns)
and the half-size 400-point board (30 columns).`

const placeLongDescription = `Place reads a BOM JSON file and allocates every component instance onto
the selected board in BOM order.

Component instances whose marking cannot be decoded are reported as
per-instance failures; the rest of the BOM still places. When the BOM
carries a power descriptor and at least one active device (IC or
transistor), two supply jumpers are added automatically.

The BOM file format:

  {
    "entries": [
      {"type": "resistor", "value": "10k", "quantity": 2,
       "designators": ["R1", "R2"]},
      {"type": "ic", "value": "TL072", "quantity": 1,
       "designators": ["U1"]}
    ],
    "power": {"voltage": 9, "polarity": "center-negative"}
  }`

const decodeLongDescription = `Decode converts manufacturer marking notations to canonical values.

Resistors take a 4- or 5-band color sequence; "purple" and "gray" are
accepted for violet and grey. Capacitors take one marking string in any
of the four common dialects: EIA 3-digit ("473K100"), alphanumeric
("47n", "0.047uF"), R-decimal ("4n7") or electrolytic ("47uF 25V").`

const encodeLongDescription = `Encode converts canonical values back to manufacturer markings.

Resistances accept shorthand ("10k", "4k7", "1M", "470R") and produce
both the 5-band and 4-band color sequences. Capacitances produce the EIA
3-digit code and the alphanumeric marking for the same value.`

const holeLongDescription = `Hole validates a hole ID against the selected board and prints its
physical coordinates and electrical connectivity group.

Terminal holes ("a15") connect to the other four holes of their column
section; power-rail holes ("+10", "-3") connect to the whole rail.`
